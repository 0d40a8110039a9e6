package console

import (
	"bytes"
	"strings"
	"testing"
)

func scripted(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadChoiceRetriesUntilNumeric(t *testing.T) {
	c, out := scripted("pizza\n\n7\n")
	n, err := c.ReadChoice()
	if err != nil {
		t.Fatalf("read choice: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
	if strings.Count(out.String(), "Your input is invalid!") != 2 {
		t.Fatalf("expected two rejections, output:\n%s", out.String())
	}
}

func TestReadChoiceEOF(t *testing.T) {
	c, _ := scripted("")
	if _, err := c.ReadChoice(); err == nil {
		t.Fatal("expected error on exhausted input")
	}
}

func TestPromptIntParseFailure(t *testing.T) {
	c, _ := scripted("twelve\n")
	if _, err := c.PromptInt("n: "); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPromptQuantityReprompts(t *testing.T) {
	c, out := scripted("0\n-5\nnope\n3\n")
	n, err := c.PromptQuantity("Enter Quantity: ")
	if err != nil {
		t.Fatalf("quantity: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
	if strings.Count(out.String(), "Invalid quantity entered. Try again!") != 3 {
		t.Fatalf("expected three rejections, output:\n%s", out.String())
	}
}

func TestReadLineHandlesMissingTerminator(t *testing.T) {
	c, _ := scripted("last line")
	line, err := c.ReadLine()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "last line" {
		t.Fatalf("unexpected line: %q", line)
	}
	if _, err := c.ReadLine(); err == nil {
		t.Fatal("expected error after input ends")
	}
}

func TestTable(t *testing.T) {
	c, out := scripted("")
	c.Table([]string{"Item", "Price"}, [][]string{{"Margherita", "10.00"}, {"Cola", "2.00"}})
	text := out.String()
	for _, want := range []string{"Item", "Price", "Margherita", "Cola"} {
		if !strings.Contains(text, want) {
			t.Fatalf("table missing %q:\n%s", want, text)
		}
	}
	if len(strings.Split(strings.TrimSpace(text), "\n")) != 3 {
		t.Fatalf("expected 3 lines:\n%s", text)
	}
}
