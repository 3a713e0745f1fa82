package repository

import (
	"context"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLineItemsTableName = "job_line_items"

type lineItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	Kind        string `dynamodbav:"kind"`
	CostCode    string `dynamodbav:"cost_code"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    string `dynamodbav:"quantity"`
	UnitCost    string `dynamodbav:"unit_cost"`
	UnitPrice   string `dynamodbav:"unit_price"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LineItemDynamoRepository persists job line items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index on job_id (string)
//
// Lines are append-only; there is no update path. A job's rollup pages
// through the job_id-index so a large job is read completely, not just the
// first page.

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItem(item))
	if err != nil {
		return entities.LineItem{}, err
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
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItem(it), nil
}

func (r *LineItemDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.LineItem, error) {
	var items []entities.LineItem
	var lastKey map[string]types.AttributeValue

	for {
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
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it lineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLineItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func toLineItem(item entities.LineItem) lineItem {
	return lineItem{
		ID:          item.ID,
		JobID:       item.JobID,
		Kind:        string(item.Kind),
		CostCode:    item.CostCode,
		Description: item.Description,
		Quantity:    decToString(item.Quantity),
		UnitCost:    decToString(item.UnitCost),
		UnitPrice:   decToString(item.UnitPrice),
		CreatedAt:   timeToString(item.CreatedAt),
	}
}

func fromLineItem(it lineItem) entities.LineItem {
	return entities.LineItem{
		ID:          it.ID,
		JobID:       it.JobID,
		Kind:        entities.LineItemKind(it.Kind),
		CostCode:    it.CostCode,
		Description: it.Description,
		Quantity:    decFromString(it.Quantity),
		UnitCost:    decFromString(it.UnitCost),
		UnitPrice:   decFromString(it.UnitPrice),
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
