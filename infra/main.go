package main

import (
	"fmt"

	aws "github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/iam"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lambda"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// functions maps the deployed function name to its build artifact under ../dist.
var functions = []struct {
	name    string
	archive string
}{
	{name: "greet", archive: "../dist/greet.zip"},
	{name: "hello", archive: "../dist/hello.zip"},
}

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		project := ctx.Project()
		stack := ctx.Stack()

		// Create a single AWS provider with default tags applied to all supported resources.
		prov, err := aws.NewProvider(ctx, "prov", &aws.ProviderArgs{
			DefaultTags: &aws.ProviderDefaultTagsArgs{
				Tags: pulumi.StringMap{
					"Project":   pulumi.String(project),
					"Stack":     pulumi.String(stack),
					"ManagedBy": pulumi.String("Pulumi"),
				},
			},
		})
		if err != nil {
			return err
		}
		awsOpts := pulumi.Provider(prov)

		// Log verbosity for both functions (configurable; default "info")
		logLevel := "info"
		if v, ok := ctx.GetConfig("greeter:logLevel"); ok && v != "" {
			logLevel = v
		}

		// Lambda assume role policy
		lambdaAssumeRolePolicy, err := iam.GetPolicyDocument(ctx, &iam.GetPolicyDocumentArgs{
			Statements: []iam.GetPolicyDocumentStatement{
				{
					Effect: pulumi.StringRef("Allow"),
					Principals: []iam.GetPolicyDocumentStatementPrincipal{
						{
							Type: "Service",
							Identifiers: []string{
								"lambda.amazonaws.com",
							},
						},
					},
					Actions: []string{
						"sts:AssumeRole",
					},
				},
			},
		}, nil)
		if err != nil {
			return err
		}

		// The functions touch no AWS resources; they only need to write logs.
		role, err := iam.NewRole(ctx, fmt.Sprintf("%s-%s-greeter-role", project, stack), &iam.RoleArgs{
			AssumeRolePolicy: pulumi.String(lambdaAssumeRolePolicy.Json),
		}, awsOpts)
		if err != nil {
			return err
		}
		_, err = iam.NewRolePolicyAttachment(ctx, fmt.Sprintf("%s-%s-greeter-basic", project, stack), &iam.RolePolicyAttachmentArgs{
			Role:      role.Name,
			PolicyArn: pulumi.String("arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"),
		}, awsOpts)
		if err != nil {
			return err
		}

		for _, f := range functions {
			fn, err := lambda.NewFunction(ctx, fmt.Sprintf("%s-%s-%s", project, stack, f.name), &lambda.FunctionArgs{
				Role:          role.Arn,
				Runtime:       pulumi.String("provided.al2"),
				Handler:       pulumi.String("bootstrap"),
				Architectures: pulumi.ToStringArray([]string{"arm64"}),
				Code:          pulumi.NewFileArchive(f.archive),
				Environment: &lambda.FunctionEnvironmentArgs{
					Variables: pulumi.StringMap{
						"LOG_LEVEL":  pulumi.String(logLevel),
						"LOG_FORMAT": pulumi.String("json"),
					},
				},
			}, awsOpts)
			if err != nil {
				return err
			}

			// Public HTTPS endpoint; the function answers every request with a 200.
			url, err := lambda.NewFunctionUrl(ctx, fmt.Sprintf("%s-%s-%s-url", project, stack, f.name), &lambda.FunctionUrlArgs{
				FunctionName:      fn.Name,
				AuthorizationType: pulumi.String("NONE"),
			}, awsOpts)
			if err != nil {
				return err
			}

			ctx.Export(f.name+"Lambda", fn.Name)
			ctx.Export(f.name+"Url", url.FunctionUrl)
		}

		ctx.Export("region", aws.GetRegionOutput(ctx, aws.GetRegionOutputArgs{}).Name())
		return nil
	})
}
