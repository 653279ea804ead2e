package utcn

import (
	"reflect"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestClusterCells(t *testing.T) {
	// One table row: course name in three fragments, then three distant
	// columns.
	fragments := pdf.TextHorizontal{
		{X: 20, W: 40, S: "Analiza"},
		{X: 62, W: 60, S: "matematica"},
		{X: 124, W: 6, S: "I"},
		{X: 200, W: 8, S: "2"},
		{X: 240, W: 8, S: "2"},
		{X: 280, W: 8, S: "E"},
	}

	got := clusterCells(fragments)
	want := []string{"Analiza matematica I", "2", "2", "E"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("clusterCells() = %v, want %v", got, want)
	}
}

func TestClusterCellsSingleFragment(t *testing.T) {
	got := clusterCells(pdf.TextHorizontal{{X: 20, W: 40, S: "TOTAL"}})
	want := []string{"TOTAL"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("clusterCells() = %v, want %v", got, want)
	}
}

func TestClusterCellsEmpty(t *testing.T) {
	if got := clusterCells(nil); got != nil {
		t.Errorf("clusterCells(nil) = %v, want nil", got)
	}
}

func TestParseCourseRow(t *testing.T) {
	tests := []struct {
		name        string
		cells       []string
		wantOK      bool
		wantName    string
		wantCredits float64
	}{
		{
			name:        "nine column row takes credits from column 7",
			cells:       []string{"1 Analiza matematica I", "2", "2", "1", "0", "5", "E", "4", "DF"},
			wantOK:      true,
			wantName:    "Analiza matematica I",
			wantCredits: 4,
		},
		{
			name:        "seven column row takes credits from column 5",
			cells:       []string{"2 Fizica", "2", "1", "1", "E", "5", "DF"},
			wantOK:      true,
			wantName:    "Fizica",
			wantCredits: 5,
		},
		{
			name:        "decimal comma credits",
			cells:       []string{"3 Proiect de specialitate", "0", "0", "2", "C", "7,5", "DS"},
			wantOK:      true,
			wantName:    "Proiect de specialitate",
			wantCredits: 7.5,
		},
		{
			name:        "name without leading number kept as is",
			cells:       []string{"Educatie fizica", "0", "2", "0", "C", "2", "DC"},
			wantOK:      true,
			wantName:    "Educatie fizica",
			wantCredits: 2,
		},
		{
			name:   "header row skipped",
			cells:  []string{"CODUL disciplinei", "C", "S", "L", "P", "FV", "Cr", "4", "Cat"},
			wantOK: false,
		},
		{
			name:   "total row skipped",
			cells:  []string{"Total ore/saptamana", "14", "6", "6", "2", "E", "30"},
			wantOK: false,
		},
		{
			name:   "non numeric credits skipped",
			cells:  []string{"1 Analiza matematica I", "2", "2", "1", "0", "5", "E", "Cr", "DF"},
			wantOK: false,
		},
		{
			name:        "zero credit row kept",
			cells:       []string{"1 Optionala", "2", "0", "0", "V", "0", "DC"},
			wantOK:      true,
			wantName:    "Optionala",
			wantCredits: 0,
		},
		{
			name:   "too few columns skipped",
			cells:  []string{"Fizica", "4"},
			wantOK: false,
		},
		{
			name:   "empty row skipped",
			cells:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, ok := parseCourseRow(tt.cells)
			if ok != tt.wantOK {
				t.Fatalf("parseCourseRow() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}

			if course.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", course.Name, tt.wantName)
			}
			if course.Credits != tt.wantCredits {
				t.Errorf("Credits = %v, want %v", course.Credits, tt.wantCredits)
			}
			if course.HasGrade() {
				t.Error("Parsed course should start without a grade")
			}
		})
	}
}

func TestCleanCourseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12 Analiza matematica", "Analiza matematica"},
		{"2.1 Chimie generala", "Chimie generala"},
		{"  Structuri   de date  ", "Structuri de date"},
		{"Fizica", "Fizica"},
	}

	for _, tt := range tests {
		if got := cleanCourseName(tt.input); got != tt.want {
			t.Errorf("cleanCourseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePlanPDFInvalid(t *testing.T) {
	if _, err := parsePlanPDF([]byte("this is not a PDF document")); err == nil {
		t.Error("Expected error for invalid PDF data, got nil")
	}

	if _, err := parsePlanPDF(nil); err == nil {
		t.Error("Expected error for empty PDF data, got nil")
	}
}
