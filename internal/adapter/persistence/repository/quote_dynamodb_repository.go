package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesOrderIDIndex     = "order_id-index"
)

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	QuoteNumber string `dynamodbav:"quote_number,omitempty"`
	Status      string `dynamodbav:"status"`
	Breakdown   string `dynamodbav:"breakdown"`
	Total       string `dynamodbav:"total"`
	Currency    string `dynamodbav:"currency"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
	ExpiresAt   string `dynamodbav:"expires_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy  string `dynamodbav:"approved_by,omitempty"`
	ArtifactRef string `dynamodbav:"artifact_ref,omitempty"`
}

// QuoteDynamoRepository persists RepairQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// The breakdown is stored as a JSON document attribute: its decimal fields
// round-trip as strings, and the denormalized total/currency attributes keep
// list views cheap.
//
// Status is part of every conditional write: Save refuses to overwrite a
// quote whose stored status drifted from what the caller read, which is the
// storage-level backstop for serializing transitions per quote.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.RepairQuote) (entities.RepairQuote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RepairQuote{}, err
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
		return entities.RepairQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairQuote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairQuote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.RepairQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.RepairQuote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Save writes the full quote back, conditioned on the status the caller read
// before applying the transition. A failed condition returns a zero quote,
// matching the not-found convention of the read methods.
func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.RepairQuote, expectedStatus entities.QuoteStatus) (entities.RepairQuote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RepairQuote{}, nil
		}
		return entities.RepairQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) UpdateArtifactRef(ctx context.Context, id, artifactRef string) (entities.RepairQuote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #artifact_ref = :ref, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#artifact_ref": "artifact_ref",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":        &types.AttributeValueMemberS{Value: artifactRef},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RepairQuote{}, nil
		}
		return entities.RepairQuote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RepairQuote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RepairQuote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.RepairQuote) (quoteItem, error) {
	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteItem{}, err
	}

	it := quoteItem{
		ID:          q.ID,
		OrderID:     q.OrderID,
		QuoteNumber: q.QuoteNumber,
		Status:      string(q.Status),
		Breakdown:   string(breakdown),
		Total:       q.Breakdown.Total.String(),
		Currency:    q.Breakdown.Currency,
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ApprovedBy:  q.ApprovedBy,
		ArtifactRef: q.ArtifactRef,
	}
	if !q.CreatedAt.IsZero() {
		it.CreatedAt = q.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if !q.ExpiresAt.IsZero() {
		it.ExpiresAt = q.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	if q.ApprovedAt != nil {
		it.ApprovedAt = q.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromQuoteItem(it quoteItem) (entities.RepairQuote, error) {
	var breakdown entities.QuoteBreakdown
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &breakdown); err != nil {
			return entities.RepairQuote{}, err
		}
	}

	q := entities.RepairQuote{
		ID:          it.ID,
		OrderID:     it.OrderID,
		QuoteNumber: it.QuoteNumber,
		Status:      entities.QuoteStatus(it.Status),
		Breakdown:   breakdown,
		ApprovedBy:  it.ApprovedBy,
		ArtifactRef: it.ArtifactRef,
	}
	q.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	q.ExpiresAt, _ = time.Parse(time.RFC3339Nano, it.ExpiresAt)
	q.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if it.ApprovedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			q.ApprovedAt = &ts
		}
	}
	return q, nil
}
