package ui

import (
	"testing"
)

func TestValidateStudyYearInput(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{"4", false},
		{" 2 ", false},
		{"0", true},
		{"5", true},
		{"2.5", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStudyYearInput(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStudyYearInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"8", 8, false},
		{"9.5", 9.5, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"10", 10, false},
		{"10.5", 0, true},
		{"-1", 0, true},
		{"nan", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"-inf", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGrade(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGrade(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseGrade(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateGradeInput(t *testing.T) {
	if err := ValidateGradeInput("8.5"); err != nil {
		t.Errorf("ValidateGradeInput(8.5) error = %v, want nil", err)
	}

	if err := ValidateGradeInput("11"); err == nil {
		t.Error("ValidateGradeInput(11) error = nil, want error")
	}

	if err := ValidateGradeInput("nan"); err == nil {
		t.Error("ValidateGradeInput(nan) error = nil, want error")
	}
}

func TestFormatGrade(t *testing.T) {
	tests := []struct {
		grade float64
		want  string
	}{
		{8, "8"},
		{9.75, "9.75"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatGrade(tt.grade); got != tt.want {
			t.Errorf("formatGrade(%v) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}
