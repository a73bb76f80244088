package repository

import (
	"context"
	"encoding/json"
	"time"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "quote_payments"
	paymentsQuoteIDIndex     = "quote_id-index"
)

type quotePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	QuoteID            string                 `dynamodbav:"quote_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type QuotePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb *dynamodb.Client) *QuotePaymentDynamoRepository {
	return &QuotePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	it := toQuotePaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuotePayment{}, err
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
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotePayment{}, nil
	}

	var it quotePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotePayment{}, err
	}
	return fromQuotePaymentItem(it), nil
}

func (r *QuotePaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotePaymentItem(it))
	}
	return items, nil
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) entities.QuotePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.QuotePayment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: json.RawMessage(it.ProviderPayloadRaw),
	}
}
