package requests

type CreateBooking struct {
	PatientID      int64  `json:"patient_id" validate:"required,gt=0"`
	TestID         int64  `json:"test_id" validate:"required,gt=0"`
	DoctorID       *int64 `json:"doctor_id,omitempty" validate:"omitempty,gt=0"`
	Notes          string `json:"notes,omitempty" validate:"max=1000"`
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=email sms in_person print"`
}

type CancelBooking struct {
	Notes string `json:"notes" validate:"max=1000"`
}
