package domain

import "testing"

func TestNewFlashcard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test valid flashcard creation
	card, err := NewFlashcard("Blue", "A cool color")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Term != "Blue" {
		t.Errorf("Expected term %q, got %q", "Blue", card.Term)
	}

	if card.Definition != "A cool color" {
		t.Errorf("Expected definition %q, got %q", "A cool color", card.Definition)
	}

	// Test that surrounding whitespace is trimmed
	card, err = NewFlashcard("  Red  ", "\tA warm color ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Term != "Red" {
		t.Errorf("Expected trimmed term %q, got %q", "Red", card.Term)
	}

	if card.Definition != "A warm color" {
		t.Errorf("Expected trimmed definition %q, got %q", "A warm color", card.Definition)
	}

	// Test empty term
	_, err = NewFlashcard("   ", "something")
	if err != ErrFlashcardTermEmpty {
		t.Errorf("Expected error %v, got %v", ErrFlashcardTermEmpty, err)
	}

	// Test empty definition
	_, err = NewFlashcard("Term", "   ")
	if err != ErrFlashcardDefinitionEmpty {
		t.Errorf("Expected error %v, got %v", ErrFlashcardDefinitionEmpty, err)
	}
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	validCard := Flashcard{
		Term:       "Ratio",
		Definition: "3:2",
	}

	// Test valid flashcard
	if err := validCard.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid Term
	invalidCard := validCard
	invalidCard.Term = ""
	if err := invalidCard.Validate(); err != ErrFlashcardTermEmpty {
		t.Errorf("Expected error %v, got %v", ErrFlashcardTermEmpty, err)
	}

	// Test invalid Definition
	invalidCard = validCard
	invalidCard.Definition = " \t "
	if err := invalidCard.Validate(); err != ErrFlashcardDefinitionEmpty {
		t.Errorf("Expected error %v, got %v", ErrFlashcardDefinitionEmpty, err)
	}
}
