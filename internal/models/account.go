package models

// Employer is a registered company account.
type Employer struct {
	ID             int    `json:"id"`
	CompanyName    string `json:"companyName"`
	CompanyWebPage string `json:"companyWebPage"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
}

// JobSeeker is a registered candidate account.
type JobSeeker struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
	BirthDate  Date   `json:"birthDate"`
	Email      string `json:"email"`
}

// JobSeekerRegisterRequest is the body of POST /candidateController/register.
type JobSeekerRegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	LastName        string `json:"lastName" validate:"required,min=2,max=100"`
	NationalID      string `json:"nationalId" validate:"required,min=10,max=20"`
	BirthDate       string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// EmployerRegisterRequest is the body of POST /employers/register.
type EmployerRegisterRequest struct {
	CompanyName     string `json:"companyName" validate:"required,max=255"`
	CompanyWebPage  string `json:"companyWebPage" validate:"required,url"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,min=7,max=20"`
	Password        string `json:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}
