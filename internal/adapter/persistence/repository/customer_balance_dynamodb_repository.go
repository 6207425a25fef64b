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

const defaultCustomerBalancesTableName = "customer_balances"

type customerBalanceItem struct {
	ID              string  `dynamodbav:"id"`
	PolicyNumber    string  `dynamodbav:"policy_number"`
	HolderName      string  `dynamodbav:"holder_name"`
	Email           string  `dynamodbav:"email"`
	AmountDue       float64 `dynamodbav:"amount_due"`
	Status          string  `dynamodbav:"status"`
	AssignedMonth   string  `dynamodbav:"assigned_month"`
	LastContactDate string  `dynamodbav:"last_contact_date,omitempty"`
}

// CustomerBalanceDynamoRepository reads and patches CustomerBalance records
// in DynamoDB. Records are created and maintained by the upstream collection
// process; this service never inserts or deletes them.
//
// Table requirements:
//   - PK: id (string)

type CustomerBalanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerBalanceRepository = (*CustomerBalanceDynamoRepository)(nil)

func NewCustomerBalanceDynamoRepository(ddb *dynamodb.Client) *CustomerBalanceDynamoRepository {
	return &CustomerBalanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMER_BALANCES_TABLE", defaultCustomerBalancesTableName),
	}
}

func (r *CustomerBalanceDynamoRepository) List(ctx context.Context) ([]entities.CustomerBalance, error) {
	var records []entities.CustomerBalance

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it customerBalanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromCustomerBalanceItem(it))
		}
	}
	return records, nil
}

func (r *CustomerBalanceDynamoRepository) UpdateBalance(ctx context.Context, id string, patch interfaces.CustomerBalancePatch) (entities.CustomerBalance, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #amount_due = :amount_due, #status = :status, #last_contact_date = :last_contact_date"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount_due":        &types.AttributeValueMemberN{Value: floatToString(patch.AmountDue)},
			":status":            &types.AttributeValueMemberS{Value: string(patch.Status)},
			":last_contact_date": &types.AttributeValueMemberS{Value: patch.LastContactDate.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#amount_due":        "amount_due",
			"#status":            "status",
			"#last_contact_date": "last_contact_date",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CustomerBalance{}, nil
		}
		return entities.CustomerBalance{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CustomerBalance{}, nil
	}

	var it customerBalanceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CustomerBalance{}, err
	}
	return fromCustomerBalanceItem(it), nil
}

func fromCustomerBalanceItem(it customerBalanceItem) entities.CustomerBalance {
	lastContact, _ := time.Parse(time.RFC3339Nano, it.LastContactDate)
	return entities.CustomerBalance{
		ID:              it.ID,
		PolicyNumber:    it.PolicyNumber,
		HolderName:      it.HolderName,
		Email:           it.Email,
		AmountDue:       it.AmountDue,
		Status:          entities.BalanceStatus(it.Status),
		AssignedMonth:   it.AssignedMonth,
		LastContactDate: lastContact,
	}
}
