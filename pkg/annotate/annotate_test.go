package annotate

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/parser"
)

var sampleBoard = []string{
	"*  *  ",
	"  *   ",
	"    * ",
	"*     ",
	"  *  *",
	" *  * ",
}

var sampleAnnotated = []string{
	"*22*1 ",
	"12*321",
	"1212*1",
	"*21222",
	"23*22*",
	"1*22*2",
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"empty board", []string{}, []string{}},
		{"nil board", nil, []string{}},
		{"empty row", []string{""}, []string{""}},
		{"several empty rows", []string{"", "", ""}, []string{""}},
		{"single mine", []string{"*"}, []string{"*"}},
		{"single blank", []string{" "}, []string{" "}},
		{"two columns", []string{"* "}, []string{"*1"}},
		{"no mines", []string{"   ", "   ", "   "}, []string{"   ", "   ", "   "}},
		{"only mines", []string{"***", "***", "***"}, []string{"***", "***", "***"}},
		{"mine surrounded", []string{"   ", " * ", "   "}, []string{"111", "1*1", "111"}},
		{"space surrounded", []string{"***", "* *", "***"}, []string{"***", "*8*", "***"}},
		{"horizontal line", []string{" * * "}, []string{"1*2*1"}},
		{"horizontal line mines at edges", []string{"*   *"}, []string{"*1 1*"}},
		{"vertical line", []string{" ", "*", " ", "*", " "}, []string{"1", "*", "2", "*", "1"}},
		{"vertical line mines at edges", []string{"*", " ", " ", " ", "*"}, []string{"*", "1", " ", "1", "*"}},
		{"cross", []string{"  *  ", "  *  ", "*****", "  *  ", "  *  "}, []string{" 2*2 ", "25*52", "*****", "25*52", " 2*2 "}},
		{"large board", []string{" *  * ", "  *   ", "    * ", "   * *", " *  * ", "      "}, []string{"1*22*1", "12*322", " 123*2", "112*4*", "1*22*2", "111111"}},
		{"sample board", sampleBoard, sampleAnnotated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Annotate(tt.input)
			if result == nil {
				t.Fatalf("Annotate(%q) returned nil", tt.input)
			}
			if !equalRows(result, tt.expected) {
				t.Errorf("Annotate(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	input := append([]string{}, sampleBoard...)
	first := Annotate(input)
	second := Annotate(input)

	if !equalRows(input, sampleBoard) {
		t.Errorf("input modified: %q", input)
	}
	if !equalRows(first, second) {
		t.Errorf("repeated calls differ: %q vs %q", first, second)
	}
}

func TestAnnotateMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"longer row truncated", []string{"* ", " **"}, []string{"*2", "2*"}},
		{"shorter row padded", []string{"*  ", "*"}, []string{"*2 ", "*2 "}},
		{"unknown byte is blank", []string{"*x", "  "}, []string{"*1", "11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Annotate(tt.input)
			if !equalRows(result, tt.expected) {
				t.Errorf("Annotate(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAnnotateWithOptions(t *testing.T) {
	opts := Options{Mine: 'X', Blank: '.'}
	result, err := AnnotateWithOptions([]string{"X..", "...", "..X"}, opts)
	if err != nil {
		t.Fatalf("AnnotateWithOptions failed: %v", err)
	}

	expected := []string{"X1.", "121", ".1X"}
	if !equalRows(result, expected) {
		t.Errorf("got %q, expected %q", result, expected)
	}
}

func TestAnnotateWithOptionsStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true

	if _, err := AnnotateWithOptions(sampleBoard, opts); err != nil {
		t.Fatalf("unexpected error on well-formed board: %v", err)
	}

	tests := []struct {
		name    string
		input   []string
		wantErr error
		row     int
		col     int
	}{
		{"ragged", []string{"* ", "*"}, ErrRaggedBoard, 1, 1},
		{"zero width then data", []string{"", " "}, ErrRaggedBoard, 1, 0},
		{"unknown byte", []string{"*  ", "  #"}, ErrInvalidCell, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnnotateWithOptions(tt.input, opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var boardErr *BoardError
			if !errors.As(err, &boardErr) {
				t.Fatalf("expected *BoardError, got %T", err)
			}
			if boardErr.Row != tt.row || boardErr.Col != tt.col {
				t.Errorf("expected error at (%d,%d), got (%d,%d)", tt.row, tt.col, boardErr.Row, boardErr.Col)
			}
		})
	}
}

func TestAnnotateWithOptionsInvalid(t *testing.T) {
	_, err := AnnotateWithOptions(sampleBoard, Options{Mine: '*', Blank: '*'})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestAnnotateBoardMatchesAnnotate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		board := randomBoard(rng, 1+rng.Intn(12), 1+rng.Intn(12), rng.Float64())

		parsed, err := parser.ParseRows(board, DefaultMine, DefaultBlank, true)
		if err != nil {
			t.Fatalf("ParseRows failed: %v", err)
		}
		fromBoard := AnnotateBoard(parsed).Rows(DefaultMine, DefaultBlank)
		fromRows := Annotate(board)

		if !equalRows(fromBoard, fromRows) {
			t.Fatalf("implementations disagree on %q:\n  rows:  %q\n  board: %q", board, fromRows, fromBoard)
		}
	}
}

func TestAnnotateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		board := randomBoard(rng, 1+rng.Intn(10), 1+rng.Intn(10), 0.3)
		result := Annotate(board)

		if len(result) != len(board) {
			t.Fatalf("height changed: %d -> %d", len(board), len(result))
		}
		for y, row := range board {
			if len(result[y]) != len(row) {
				t.Fatalf("width of row %d changed: %d -> %d", y, len(row), len(result[y]))
			}
			for x := range row {
				if row[x] == '*' {
					if result[y][x] != '*' {
						t.Fatalf("mine at (%d,%d) lost in %q", y, x, result)
					}
					continue
				}
				want := byte(' ')
				if n := bruteCount(board, y, x); n > 0 {
					want = '0' + byte(n)
				}
				if result[y][x] != want {
					t.Fatalf("cell (%d,%d) of %q = %q, expected %q", y, x, board, result[y][x], want)
				}
			}
		}
	}
}

func randomBoard(rng *rand.Rand, width, height int, density float64) []string {
	board := make([]string, height)
	for y := range board {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(' ')
			}
		}
		board[y] = sb.String()
	}
	return board
}

func bruteCount(board []string, y, x int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := y+dy, x+dx
			if ny >= 0 && ny < len(board) && nx >= 0 && nx < len(board[ny]) && board[ny][nx] == '*' {
				n++
			}
		}
	}
	return n
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
