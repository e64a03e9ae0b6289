package entities

// User is an authenticated operator of the system.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Role drives kanban visibility and status-transition authorization; the
// canonical vocabulary lives in the workflow package.
type User struct {
	ID       string `json:"id" dynamodbav:"id"`
	Email    string `json:"email" dynamodbav:"email"`
	Password string `json:"-" dynamodbav:"password"`
	Nome     string `json:"nome" dynamodbav:"nome"`
	Role     string `json:"role" dynamodbav:"role"`
}
