// readlens-lambda serves readability analysis as an AWS Lambda function
// behind API Gateway or by direct invocation.
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sanonone/readlens/internal/invoke"
	"github.com/sanonone/readlens/internal/logging"
)

func main() {
	logger := logging.Setup(os.Getenv("READLENS_LOG_LEVEL"), os.Stderr)
	handler := invoke.NewHandler(logger)
	lambda.Start(handler.Handle)
}
