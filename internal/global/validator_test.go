// Package global - Test kiểm tra CPF.
package global

import "testing"

func TestIsValidCPF_HopLe(t *testing.T) {
	valid := []string{
		"52998224725",
		"529.982.247-25", // dạng có dấu
		"111.444.777-35",
		"529 982 247 25", // khoảng trắng cũng được chấp nhận
	}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("CPF %q phải hợp lệ", cpf)
		}
	}
}

func TestIsValidCPF_KhongHopLe(t *testing.T) {
	invalid := []string{
		"",
		"52998224724",     // sai chữ số kiểm tra cuối
		"12998224725",     // sai chữ số kiểm tra đầu
		"11111111111",     // toàn chữ số giống nhau
		"000.000.000-00",  // toàn số 0
		"1234567890",      // thiếu chữ số
		"123456789012",    // thừa chữ số
		"5299822472a",     // có chữ cái
		"529.982.247/25",  // ký tự phân cách lạ
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("CPF %q không được hợp lệ", cpf)
		}
	}
}

func TestNormalizeCPF(t *testing.T) {
	cases := map[string]string{
		"529.982.247-25": "52998224725",
		"52998224725":    "52998224725",
		"529 982 247 25": "52998224725",
		"":               "",
	}
	for input, want := range cases {
		if got := NormalizeCPF(input); got != want {
			t.Errorf("NormalizeCPF(%q) = %q, kỳ vọng %q", input, got, want)
		}
	}
}
