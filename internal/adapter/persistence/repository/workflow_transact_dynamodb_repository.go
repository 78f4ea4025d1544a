package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WorkflowTransactDynamoRepository is the transactional multi-write surface of
// the entity store. Every operation is one TransactWriteItems call: the legs
// commit together or not at all, and each leg's ConditionExpression pins the
// value read before the transaction, so a concurrent writer cancels the whole
// transaction instead of producing a partial or double-applied state.

type WorkflowTransactDynamoRepository struct {
	ddb             *dynamodb.Client
	quotationsTable string
	projectsTable   string
	paymentsTable   string
	milestonesTable string
}

var _ interfaces.IWorkflowTransactionRepository = (*WorkflowTransactDynamoRepository)(nil)

func NewWorkflowTransactDynamoRepository(ddb *dynamodb.Client) *WorkflowTransactDynamoRepository {
	return &WorkflowTransactDynamoRepository{
		ddb:             ddb,
		quotationsTable: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		projectsTable:   getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		paymentsTable:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		milestonesTable: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

// ApproveQuotationAndCreateProject flips the quotation to its approved status
// and creates the project record in the same transaction. The quotation leg is
// conditioned on the status read by the caller; the project leg on the id not
// existing yet.
func (r *WorkflowTransactDynamoRepository) ApproveQuotationAndCreateProject(ctx context.Context, quotationID string, from, to entities.QuotationStatus, project entities.Project) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	projectAV, err := attributevalue.MarshalMap(toProjectItem(project))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.quotationsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quotationID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
					UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":from":       &types.AttributeValueMemberS{Value: string(from)},
						":to":         &types.AttributeValueMemberS{Value: string(to)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.projectsTable),
					Item:                projectAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return project, nil
}

// AcceptPaymentAndApply commits one accepted payment: the proof-of-payment
// status flip, the project balance/payment-status move, and (for milestone
// payments) the milestone billing update. The project leg is conditioned on
// the exact pre-payment balance, which is what serializes two concurrent
// accepts against the same project.
func (r *WorkflowTransactDynamoRepository) AcceptPaymentAndApply(ctx context.Context, app interfaces.PaymentApplication) (bool, error) {
	now := formatTime(app.ResolvedAt)
	if now == "" {
		now = time.Now().UTC().Format(time.RFC3339Nano)
	}

	writes := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.paymentsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: app.PaymentID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
				UpdateExpression:    aws.String("SET #status = :accepted, #resolved_at = :resolved_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending":     &types.AttributeValueMemberS{Value: string(entities.ProofOfPaymentStatusPending)},
					":accepted":    &types.AttributeValueMemberS{Value: string(entities.ProofOfPaymentStatusAccepted)},
					":resolved_at": &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":          "id",
					"#status":      "status",
					"#resolved_at": "resolved_at",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.projectsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: app.ProjectID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #balance = :expected_balance AND #payment_status = :from_status"),
				UpdateExpression:    aws.String("SET #balance = :new_balance, #payment_status = :to_status, #updated_at = :updated_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected_balance": &types.AttributeValueMemberS{Value: app.ExpectedBalance.String()},
					":new_balance":      &types.AttributeValueMemberS{Value: app.NewBalance.String()},
					":from_status":      &types.AttributeValueMemberS{Value: string(app.FromPaymentStatus)},
					":to_status":        &types.AttributeValueMemberS{Value: string(app.ToPaymentStatus)},
					":updated_at":       &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":             "id",
					"#balance":        "remaining_balance",
					"#payment_status": "payment_status",
					"#updated_at":     "updated_at",
				},
			},
		},
	}

	if app.Milestone != nil {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.milestonesTable),
				Key: map[string]types.AttributeValue{
					"project_id":   &types.AttributeValueMemberS{Value: app.ProjectID},
					"milestone_no": &types.AttributeValueMemberN{Value: strconv.Itoa(app.Milestone.MilestoneNo)},
				},
				ConditionExpression: aws.String("attribute_exists(#pid) AND #billing_status = :from_billing"),
				UpdateExpression:    aws.String("SET #billing_status = :paid, #status = :ms_status, #updated_at = :updated_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from_billing": &types.AttributeValueMemberS{Value: string(app.Milestone.FromBillingStatus)},
					":paid":         &types.AttributeValueMemberS{Value: string(entities.MilestoneBillingStatusPaid)},
					":ms_status":    &types.AttributeValueMemberS{Value: string(app.Milestone.ToStatus)},
					":updated_at":   &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#pid":            "project_id",
					"#billing_status": "billing_status",
					"#status":         "status",
					"#updated_at":     "updated_at",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
