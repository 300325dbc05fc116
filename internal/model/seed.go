package model

// SampleUsers returns the fixed set of users written by the seed operation.
func SampleUsers() []UserInput {
	return []UserInput{
		{Name: "John Doe", Email: "john@example.com", Age: intPtr(25)},
		{Name: "Jane Smith", Email: "jane@example.com", Age: intPtr(30)},
		{Name: "Bob Johnson", Email: "bob@example.com", Age: intPtr(35)},
		{Name: "Alice Brown", Email: "alice@example.com", Age: intPtr(28)},
	}
}

func intPtr(v int) *int {
	return &v
}
