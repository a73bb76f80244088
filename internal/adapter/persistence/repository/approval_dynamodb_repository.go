package repository

import (
	"context"
	"time"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultApprovalsTableName = "client_approvals"

type approvalItem struct {
	QuoteID       string `dynamodbav:"quote_id"`
	Approved      bool   `dynamodbav:"approved"`
	ApprovedAt    string `dynamodbav:"approved_at"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	ClientNotes   string `dynamodbav:"client_notes,omitempty"`
}

// ApprovalDynamoRepository persists ClientApproval records in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// The quote id is the partition key on purpose: a quote gets exactly one
// terminal decision, and the attribute_not_exists condition enforces it.

type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, a entities.ClientApproval) (entities.ClientApproval, error) {
	it := approvalItem{
		QuoteID:       a.QuoteID,
		Approved:      a.Approved,
		ApprovedAt:    a.ApprovedAt.UTC().Format(time.RFC3339Nano),
		PaymentMethod: string(a.PaymentMethod),
		ClientNotes:   a.ClientNotes,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ClientApproval{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	})
	if err != nil {
		return entities.ClientApproval{}, err
	}
	return a, nil
}

func (r *ApprovalDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.ClientApproval, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientApproval{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientApproval{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientApproval{}, err
	}

	approvedAt, _ := time.Parse(time.RFC3339Nano, it.ApprovedAt)
	return entities.ClientApproval{
		QuoteID:       it.QuoteID,
		Approved:      it.Approved,
		ApprovedAt:    approvedAt,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		ClientNotes:   it.ClientNotes,
	}, nil
}
