package models

// Employee is one registered person in the directory. EmployeeID is the
// external identifier (unique across the directory); ID is the internal key.
// FaceImage is an opaque path string consumed by the recognition pipeline.
type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FaceImage  string `json:"face_image"`
}

// EmployeeCreateRequest is the POST /api/employees payload.
// employee_id and name are required; the rest default to empty.
type EmployeeCreateRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FaceImage  string `json:"face_image"`
}

// EmployeeUpdate is the PUT /api/employees/:id payload. Only fields present
// in the request body are applied; unknown JSON keys are ignored. The pointer
// fields are the allow-list of what a partial update may touch.
type EmployeeUpdate struct {
	EmployeeID *string `json:"employee_id"`
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	FaceImage  *string `json:"face_image"`
}

// IsEmpty reports whether the update would change nothing.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.EmployeeID == nil && u.Name == nil && u.Position == nil &&
		u.Department == nil && u.Phone == nil && u.Email == nil && u.FaceImage == nil
}
