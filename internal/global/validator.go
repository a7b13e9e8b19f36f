package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("cpf", validateCPF)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu mạnh
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// Kiểm tra độ dài tối thiểu
	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// Yêu cầu ít nhất 3 trong 4 điều kiện
	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateCPF kiểm tra mã CPF (định danh khách hàng Brazil, 11 chữ số).
// Chấp nhận cả dạng có dấu chấm/gạch (000.000.000-00) lẫn dạng chỉ số.
func validateCPF(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Rỗng = optional, dùng kèm required nếu bắt buộc
	}
	return IsValidCPF(value)
}

// IsValidCPF kiểm tra checksum CPF theo thuật toán modulo 11
func IsValidCPF(cpf string) bool {
	// Chỉ giữ lại chữ số
	var digits []int
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		} else if r != '.' && r != '-' && r != ' ' {
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	// CPF toàn chữ số giống nhau là không hợp lệ (00000000000, 11111111111, ...)
	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// Chữ số kiểm tra thứ nhất
	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	check1 := (sum * 10) % 11
	if check1 == 10 {
		check1 = 0
	}
	if check1 != digits[9] {
		return false
	}

	// Chữ số kiểm tra thứ hai
	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	check2 := (sum * 10) % 11
	if check2 == 10 {
		check2 = 0
	}
	return check2 == digits[10]
}

// NormalizeCPF loại bỏ dấu chấm, gạch và khoảng trắng khỏi CPF
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
