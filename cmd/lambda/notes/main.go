package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"notes-api/pkg/lambda"
	"notes-api/pkg/server"
)

var container *server.Container

func init() {
	var err error
	container, err = server.GetConnectionManager().GetContainer(context.Background())
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := container.Router.Route(ctx, lambda.FromAPIGateway(event))
	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
