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

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID              string `dynamodbav:"id"`
	JobID           string `dynamodbav:"job_id"`
	EstimateID      string `dynamodbav:"estimate_id"`
	Subtotal        string `dynamodbav:"subtotal"`
	OverheadAmount  string `dynamodbav:"overhead_amount"`
	TaxJurisdiction string `dynamodbav:"tax_jurisdiction,omitempty"`
	TaxAmount       string `dynamodbav:"tax_amount"`
	GrandTotal      string `dynamodbav:"grand_total"`
	Status          string `dynamodbav:"status"`
	IssuedAt        string `dynamodbav:"issued_at,omitempty"`
	PaidAt          string `dynamodbav:"paid_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists invoices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index on job_id (string)
//
// Status updates also stamp issued_at/paid_at so the document carries its own
// timeline.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error) {
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
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := timeToString(timeNow())

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	switch status {
	case entities.InvoiceStatusIssued:
		expr += ", #issued_at = :issued_at"
		vals[":issued_at"] = &types.AttributeValueMemberS{Value: now}
		names["#issued_at"] = "issued_at"
	case entities.InvoiceStatusPaid:
		expr += ", #paid_at = :paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: now}
		names["#paid_at"] = "paid_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:              inv.ID,
		JobID:           inv.JobID,
		EstimateID:      inv.EstimateID,
		Subtotal:        decToString(inv.Subtotal),
		OverheadAmount:  decToString(inv.OverheadAmount),
		TaxJurisdiction: inv.TaxJurisdiction,
		TaxAmount:       decToString(inv.TaxAmount),
		GrandTotal:      decToString(inv.GrandTotal),
		Status:          string(inv.Status),
		IssuedAt:        timeToString(inv.IssuedAt),
		PaidAt:          timeToString(inv.PaidAt),
		CreatedAt:       timeToString(inv.CreatedAt),
		UpdatedAt:       timeToString(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:              it.ID,
		JobID:           it.JobID,
		EstimateID:      it.EstimateID,
		Subtotal:        decFromString(it.Subtotal),
		OverheadAmount:  decFromString(it.OverheadAmount),
		TaxJurisdiction: it.TaxJurisdiction,
		TaxAmount:       decFromString(it.TaxAmount),
		GrandTotal:      decFromString(it.GrandTotal),
		Status:          entities.InvoiceStatus(it.Status),
		IssuedAt:        timeFromString(it.IssuedAt),
		PaidAt:          timeFromString(it.PaidAt),
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
