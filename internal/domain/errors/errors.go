package errors

import (
	"net/http"

	"drinkpos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches presets by error code so copies made by WithDetails still match errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu không hợp lệ",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Giỏ hàng đang trống",
		"",
	)

	ErrOutOfStock = NewBaseError(
		http.StatusConflict,
		"OUT_OF_STOCK",
		"Không đủ số lượng trong kho",
		"",
	)

	ErrItemNotInCart = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_IN_CART",
		"Món này không có trong giỏ hàng",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Phương thức thanh toán không hợp lệ",
		"",
	)

	ErrInvalidStock = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STOCK",
		"Số lượng tồn kho không hợp lệ",
		"",
	)

	ErrMissingCheckInData = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CHECKIN_DATA",
		"Cần vị trí hoặc ảnh để chấm công",
		"",
	)

	ErrInvalidShift = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SHIFT",
		"Thông tin ca làm không hợp lệ",
		"",
	)

	// Session errors
	ErrSessionStaged = NewBaseError(
		http.StatusConflict,
		"SESSION_STAGED",
		"Đơn hàng đang chờ thanh toán, không thể sửa giỏ hàng",
		"",
	)

	ErrSessionNotStaged = NewBaseError(
		http.StatusConflict,
		"SESSION_NOT_STAGED",
		"Chưa có đơn hàng chờ thanh toán",
		"",
	)

	ErrPaymentMethodRequired = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_REQUIRED",
		"Vui lòng chọn phương thức thanh toán",
		"",
	)

	// Not found errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Không tìm thấy đơn hàng",
		"",
	)

	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Không tìm thấy món",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Không tìm thấy người dùng",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Không tìm thấy thông báo",
		"",
	)

	ErrShiftNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIFT_NOT_FOUND",
		"Không tìm thấy ca làm",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Không tìm thấy thiết bị",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Không tìm thấy tác vụ",
		"",
	)

	// User errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Số điện thoại hoặc tên đăng nhập đã tồn tại",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Lỗi xử lý mật khẩu",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Mật khẩu phải có ít nhất 6 ký tự",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Không thể chuyển trạng thái tài khoản",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Sai tên đăng nhập hoặc mật khẩu",
		"",
	)

	ErrAccountPending = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_PENDING",
		"Tài khoản đang chờ quản lý duyệt",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_LOCKED",
		"Tài khoản đã bị khóa",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Vui lòng đăng nhập",
		"",
	)

	// Upload errors
	ErrUploadTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"UPLOAD_TIMEOUT",
		"Mạng quá yếu, tải ảnh lên thất bại",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Tải tệp lên thất bại",
		"",
	)

	// Store errors
	ErrStorePermissionDenied = NewBaseError(
		http.StatusForbidden,
		"STORE_PERMISSION_DENIED",
		"Không có quyền ghi dữ liệu",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Giao dịch cơ sở dữ liệu thất bại",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Bạn không có quyền thực hiện thao tác này",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy dữ liệu",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Dữ liệu bị xung đột",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Lỗi thực thi cơ sở dữ liệu"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
