package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTask struct {
	Pillar string `json:"pillar"`
	Title  string `json:"title"`
}

func TestExtractJSONArray_CleanArray(t *testing.T) {
	raw := `[{"pillar":"Cognitive","title":"Puzzle time"},{"pillar":"Physical","title":"Ball game"}]`
	result, err := ExtractJSONArray[testTask](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Cognitive", result[0].Pillar)
	assert.Equal(t, "Ball game", result[1].Title)
}

func TestExtractJSONArray_FencedArray(t *testing.T) {
	raw := "```json\n[{\"pillar\":\"Language\",\"title\":\"Story retell\"}]\n```"
	result, err := ExtractJSONArray[testTask](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Language", result[0].Pillar)
}

func TestExtractJSONArray_SurroundingText(t *testing.T) {
	raw := "Here are today's tasks:\n[{\"pillar\":\"Creativity\",\"title\":\"Draw a map\"}]\nEnjoy!"
	result, err := ExtractJSONArray[testTask](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Draw a map", result[0].Title)
}

func TestExtractJSONArray_BracketsInsideStrings(t *testing.T) {
	raw := `[{"pillar":"Cognitive","title":"Sort shapes [circles] first"}]`
	result, err := ExtractJSONArray[testTask](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Sort shapes [circles] first", result[0].Title)
}

func TestExtractJSONArray_StrayComments(t *testing.T) {
	raw := "[\n  // morning block\n  {\"pillar\":\"Physical\",\"title\":\"Stretch\"}\n]"
	result, err := ExtractJSONArray[testTask](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Stretch", result[0].Title)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	raw := "I could not come up with any tasks today."
	_, err := ExtractJSONArray[testTask](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_InvalidJSON(t *testing.T) {
	raw := `[{"pillar":"Cognitive", broken}]`
	_, err := ExtractJSONArray[testTask](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_ValidationFailure(t *testing.T) {
	raw := `[{"pillar":"Cognitive","title":""}]`
	validator := func(tasks []testTask) error {
		for _, task := range tasks {
			if task.Title == "" {
				return fmt.Errorf("task title is required")
			}
		}
		return nil
	}
	_, err := ExtractJSONArray(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSONArray_ValidationSuccess(t *testing.T) {
	raw := `[{"pillar":"Character","title":"Thank someone"}]`
	validator := func(tasks []testTask) error {
		if len(tasks) != 1 {
			return fmt.Errorf("expected 1 task, got %d", len(tasks))
		}
		return nil
	}
	result, err := ExtractJSONArray(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "Thank someone", result[0].Title)
}
