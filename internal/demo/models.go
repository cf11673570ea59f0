package demo

// SumRequest holds the operands of /calculate/
type SumRequest struct {
	Num1 *int `json:"num_1" form:"num_1" binding:"required"`
	Num2 *int `json:"num_2" form:"num_2" binding:"required"`
}

type SumResponse struct {
	Result int `json:"result"`
}

// Person is the payload of the adult check
type Person struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required"`
}

type PersonResponse struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	IsAdult bool   `json:"is_adult"`
}

// Profile is the fixed sample user served by /2.2
type Profile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DirectoryEntry is one user of the fixed demo directory
type DirectoryEntry struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Feedback struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required,max=2000"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
