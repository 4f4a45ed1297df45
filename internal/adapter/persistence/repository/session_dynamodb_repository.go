package repository

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "console_sessions"

// DynamoAPI is the part of the DynamoDB client the session store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type sessionItem struct {
	Token       string   `dynamodbav:"token"`
	MemberID    string   `dynamodbav:"member_id"`
	Name        string   `dynamodbav:"name"`
	Email       string   `dynamodbav:"email"`
	Permissions []string `dynamodbav:"permissions"`
	CreatedAt   string   `dynamodbav:"created_at"`
	ExpiresAt   string   `dynamodbav:"expires_at"`
	TTL         int64    `dynamodbav:"ttl,omitempty"`
}

// SessionDynamoRepository persists operator sessions in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - TTL attribute: ttl (epoch seconds), so expired sessions are reaped by
//     DynamoDB as well as on read.

type SessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	granted := s.Permissions.Granted()
	perms := make([]string, len(granted))
	for i, p := range granted {
		perms[i] = string(p)
	}
	it := sessionItem{
		Token:       s.Token,
		MemberID:    s.MemberID,
		Name:        s.Name,
		Email:       s.Email,
		Permissions: perms,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:   s.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.ExpiresAt.IsZero() {
		it.TTL = s.ExpiresAt.Unix()
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	perms := entities.Permissions{}
	for _, p := range it.Permissions {
		perms[entities.Permission(p)] = true
	}
	return entities.Session{
		Token:       it.Token,
		MemberID:    it.MemberID,
		Name:        it.Name,
		Email:       it.Email,
		Permissions: perms,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}
}
