package repository

import (
	"context"
	"time"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentLogsTableName = "payment_logs"
	paymentLogsTxnRefIndex      = "transaction_reference-index"
)

type paymentLogItem struct {
	ID                   string  `dynamodbav:"id"`
	CustomerID           string  `dynamodbav:"customer_id,omitempty"`
	PolicyNumber         string  `dynamodbav:"policy_number"`
	TransactionReference string  `dynamodbav:"transaction_reference"`
	EndToEndReference    string  `dynamodbav:"end_to_end_reference,omitempty"`
	AmountApplied        float64 `dynamodbav:"amount_applied"`
	OldBalance           float64 `dynamodbav:"old_balance"`
	NewBalance           float64 `dynamodbav:"new_balance"`
	PaymentStatusCode    string  `dynamodbav:"payment_status_code"`
	SelectionReason      string  `dynamodbav:"selection_reason"`
	CandidateCount       int     `dynamodbav:"candidate_count"`
	AlternativeCount     int     `dynamodbav:"alternative_count"`
	CreatedAt            string  `dynamodbav:"created_at"`
}

// PaymentLogDynamoRepository persists the payment audit trail in DynamoDB.
// Entries are write-once: Create refuses to overwrite an existing id.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: transaction_reference-index (PK: transaction_reference)

type PaymentLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLogRepository = (*PaymentLogDynamoRepository)(nil)

func NewPaymentLogDynamoRepository(ddb *dynamodb.Client) *PaymentLogDynamoRepository {
	return &PaymentLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_LOGS_TABLE", defaultPaymentLogsTableName),
	}
}

func (r *PaymentLogDynamoRepository) Create(ctx context.Context, entry entities.PaymentLog) (entities.PaymentLog, error) {
	it := toPaymentLogItem(entry)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentLog{}, err
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
		return entities.PaymentLog{}, err
	}
	return entry, nil
}

func (r *PaymentLogDynamoRepository) ExistsByTransactionReference(ctx context.Context, transactionReference, policyNumber string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentLogsTxnRefIndex),
		KeyConditionExpression: aws.String("transaction_reference = :ref"),
		FilterExpression:       aws.String("policy_number = :policy"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":    &types.AttributeValueMemberS{Value: transactionReference},
			":policy": &types.AttributeValueMemberS{Value: policyNumber},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func toPaymentLogItem(entry entities.PaymentLog) paymentLogItem {
	return paymentLogItem{
		ID:                   entry.ID,
		CustomerID:           entry.CustomerID,
		PolicyNumber:         entry.PolicyNumber,
		TransactionReference: entry.TransactionReference,
		EndToEndReference:    entry.EndToEndReference,
		AmountApplied:        entry.AmountApplied,
		OldBalance:           entry.OldBalance,
		NewBalance:           entry.NewBalance,
		PaymentStatusCode:    entry.PaymentStatusCode,
		SelectionReason:      string(entry.SelectionReason),
		CandidateCount:       entry.CandidateCount,
		AlternativeCount:     entry.AlternativeCount,
		CreatedAt:            entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
