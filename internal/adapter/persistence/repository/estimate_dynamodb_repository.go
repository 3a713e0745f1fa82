package repository

import (
	"context"
	"errors"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	jobIDIndexName            = "job_id-index"
)

type estimateItem struct {
	ID              string `dynamodbav:"id"`
	JobID           string `dynamodbav:"job_id"`
	ServiceAmount   string `dynamodbav:"service_amount"`
	Subtotal        string `dynamodbav:"subtotal"`
	OverheadRatePct string `dynamodbav:"overhead_rate_pct"`
	OverheadAmount  string `dynamodbav:"overhead_amount"`
	TaxJurisdiction string `dynamodbav:"tax_jurisdiction,omitempty"`
	TaxAmount       string `dynamodbav:"tax_amount"`
	GrandTotal      string `dynamodbav:"grand_total"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index on job_id (string)
//
// Money fields are stored as decimal strings; the pricing engine is the only
// place that does arithmetic on them.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobIDIndexName),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatusByJobID(ctx context.Context, jobID string, status entities.EstimateStatus) (entities.Estimate, error) {
	estimate, err := r.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if estimate.ID == "" {
		return entities.Estimate{}, nil
	}

	return r.update(ctx, estimate.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateTotalsByID(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subtotal = :subtotal, #overhead_amount = :overhead_amount, #tax_amount = :tax_amount, #grand_total = :grand_total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":subtotal":        &types.AttributeValueMemberS{Value: decToString(e.Subtotal)},
			":overhead_amount": &types.AttributeValueMemberS{Value: decToString(e.OverheadAmount)},
			":tax_amount":      &types.AttributeValueMemberS{Value: decToString(e.TaxAmount)},
			":grand_total":     &types.AttributeValueMemberS{Value: decToString(e.GrandTotal)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#subtotal":        "subtotal",
			"#overhead_amount": "overhead_amount",
			"#tax_amount":      "tax_amount",
			"#grand_total":     "grand_total",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := timeToString(timeNow())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:              e.ID,
		JobID:           e.JobID,
		ServiceAmount:   decToString(e.ServiceAmount),
		Subtotal:        decToString(e.Subtotal),
		OverheadRatePct: decToString(e.OverheadRatePct),
		OverheadAmount:  decToString(e.OverheadAmount),
		TaxJurisdiction: e.TaxJurisdiction,
		TaxAmount:       decToString(e.TaxAmount),
		GrandTotal:      decToString(e.GrandTotal),
		Status:          string(e.Status),
		CreatedAt:       timeToString(e.CreatedAt),
		UpdatedAt:       timeToString(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:              it.ID,
		JobID:           it.JobID,
		ServiceAmount:   decFromString(it.ServiceAmount),
		Subtotal:        decFromString(it.Subtotal),
		OverheadRatePct: decFromString(it.OverheadRatePct),
		OverheadAmount:  decFromString(it.OverheadAmount),
		TaxJurisdiction: it.TaxJurisdiction,
		TaxAmount:       decFromString(it.TaxAmount),
		GrandTotal:      decFromString(it.GrandTotal),
		Status:          entities.EstimateStatus(it.Status),
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
