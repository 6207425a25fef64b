package repository

import (
	"context"
	"errors"
	"time"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQRTransactionsTableName = "qr_transactions"

type qrTransactionItem struct {
	ID               string  `dynamodbav:"id"`
	PolicyNumber     string  `dynamodbav:"policy_number"`
	Variant          string  `dynamodbav:"variant"`
	Status           string  `dynamodbav:"status"`
	CustomerName     string  `dynamodbav:"customer_name,omitempty"`
	CustomerEmail    string  `dynamodbav:"customer_email,omitempty"`
	AgentName        string  `dynamodbav:"agent_name,omitempty"`
	AgentEmail       string  `dynamodbav:"agent_email,omitempty"`
	LineOfBusiness   string  `dynamodbav:"line_of_business,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	RawPayload       string  `dynamodbav:"raw_payload,omitempty"`
	PaidAt           string  `dynamodbav:"paid_at,omitempty"`
	PaymentReference string  `dynamodbav:"payment_reference,omitempty"`
	PaymentAmount    float64 `dynamodbav:"payment_amount,omitempty"`
	PaymentSnapshot  string  `dynamodbav:"payment_snapshot,omitempty"`
}

// QRTransactionDynamoRepository persists QRTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// MarkPaid is conditional on the transaction still being pending, which makes
// the pending -> paid transition one-way even under concurrent callbacks.

type QRTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQRTransactionRepository = (*QRTransactionDynamoRepository)(nil)

func NewQRTransactionDynamoRepository(ddb *dynamodb.Client) *QRTransactionDynamoRepository {
	return &QRTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QR_TRANSACTIONS_TABLE", defaultQRTransactionsTableName),
	}
}

func (r *QRTransactionDynamoRepository) List(ctx context.Context) ([]entities.QRTransaction, error) {
	var transactions []entities.QRTransaction

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it qrTransactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			transactions = append(transactions, fromQRTransactionItem(it))
		}
	}
	return transactions, nil
}

func (r *QRTransactionDynamoRepository) MarkPaid(ctx context.Context, id string, patch interfaces.QRSettlementPatch) (entities.QRTransaction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression: aws.String("SET #status = :paid, #paid_at = :paid_at, " +
			"#payment_reference = :payment_reference, #payment_amount = :payment_amount, #payment_snapshot = :payment_snapshot"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":           &types.AttributeValueMemberS{Value: string(entities.QRTransactionStatusPending)},
			":paid":              &types.AttributeValueMemberS{Value: string(entities.QRTransactionStatusPaid)},
			":paid_at":           &types.AttributeValueMemberS{Value: patch.PaidAt.UTC().Format(time.RFC3339Nano)},
			":payment_reference": &types.AttributeValueMemberS{Value: patch.PaymentReference},
			":payment_amount":    &types.AttributeValueMemberN{Value: floatToString(patch.PaymentAmount)},
			":payment_snapshot":  &types.AttributeValueMemberS{Value: patch.PaymentSnapshot},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":            "status",
			"#paid_at":           "paid_at",
			"#payment_reference": "payment_reference",
			"#payment_amount":    "payment_amount",
			"#payment_snapshot":  "payment_snapshot",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QRTransaction{}, nil
		}
		return entities.QRTransaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QRTransaction{}, nil
	}

	var it qrTransactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QRTransaction{}, err
	}
	return fromQRTransactionItem(it), nil
}

func fromQRTransactionItem(it qrTransactionItem) entities.QRTransaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	return entities.QRTransaction{
		ID:               it.ID,
		PolicyNumber:     it.PolicyNumber,
		Variant:          entities.QRVariant(it.Variant),
		Status:           entities.QRTransactionStatus(it.Status),
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		AgentName:        it.AgentName,
		AgentEmail:       it.AgentEmail,
		LineOfBusiness:   it.LineOfBusiness,
		CreatedAt:        createdAt,
		RawPayload:       it.RawPayload,
		PaidAt:           paidAt,
		PaymentReference: it.PaymentReference,
		PaymentAmount:    it.PaymentAmount,
		PaymentSnapshot:  it.PaymentSnapshot,
	}
}
