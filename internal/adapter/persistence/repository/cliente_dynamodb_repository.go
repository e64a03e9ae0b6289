package repository

import (
	"context"
	"errors"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientesTableName = "shoeRepairClientes"

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DYNAMODB_CLIENTE_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(c)
	if err != nil {
		return entities.Cliente{}, err
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
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var c entities.Cliente
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) List(ctx context.Context) ([]entities.Cliente, error) {
	var clientes []entities.Cliente

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []entities.Cliente
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		clientes = append(clientes, batch...)
	}
	if clientes == nil {
		clientes = []entities.Cliente{}
	}
	return clientes, nil
}

func (r *ClienteDynamoRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (entities.Cliente, error) {
	var update expression.UpdateBuilder
	for k, v := range fields {
		update = update.Set(expression.Name(k), expression.Value(v))
	}
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.Name("id").AttributeExists()).
		Build()
	if err != nil {
		return entities.Cliente{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cliente{}, nil
		}
		return entities.Cliente{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cliente{}, nil
	}

	var c entities.Cliente
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}
