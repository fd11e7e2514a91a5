package reservationapi

// Модели в формате API бронирований

// Reservation бронирование
type Reservation struct {
	ID           string        `json:"id,omitempty"`
	CustomerName string        `json:"customerName"`
	Email        *string       `json:"email"`
	Phone        *string       `json:"phone"`
	Service      string        `json:"service"`
	Date         string        `json:"date"`
	EmployeeID   *string       `json:"employeeId,omitempty"`
	Employee     *EmployeeName `json:"employee,omitempty"`
}

// EmployeeName денормализованное имя мастера в бронировании
type EmployeeName struct {
	Name string `json:"name"`
}

// ReservationPatch частичное обновление бронирования
type ReservationPatch struct {
	CustomerName *string `json:"customerName,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Service      *string `json:"service,omitempty"`
	Date         *string `json:"date,omitempty"`
	EmployeeID   *string `json:"employeeId,omitempty"`
}

// Employee мастер
type Employee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameAr    string `json:"nameAr,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Feedback отзыв. Поле valid - признак одобрения модератором
type Feedback struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   string  `json:"message"`
	Rating    *int    `json:"rating"`
	Valid     bool    `json:"valid"`
	CreatedAt string  `json:"createdAt"`
}

// FeedbackCreate тело публичной формы отзыва
type FeedbackCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  *int   `json:"rating,omitempty"`
}

// SmsLog запись журнала SMS
type SmsLog struct {
	ID        string  `json:"id"`
	To        string  `json:"to"`
	Status    string  `json:"status"`
	ErrorText *string `json:"errorText"`
	CreatedAt string  `json:"createdAt"`
}

// SmsLogPage постраничный ответ журнала SMS
type SmsLogPage struct {
	Items []SmsLog `json:"items"`
	Total int      `json:"total"`
}

type phoneVerification struct {
	Phone string `json:"phone"`
	Code  string `json:"code,omitempty"`
}

type emailVerification struct {
	Email string `json:"email"`
	Code  string `json:"code,omitempty"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
