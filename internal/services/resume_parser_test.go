package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_ResumeParser_Parse_ShouldExtractFields(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return(
		`{"name":" Asha Rao ","skills":["Python"," SQL ","python",""],"experience":["Data Analyst at Acme"],"education":["B.Tech",""]}`, nil)

	resume, err := NewResumeParser(client).Parse(context.Background(), "Asha Rao, Python developer")

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", resume.Name)
	assert.Equal(t, []string{"Python", "SQL"}, resume.Skills)
	assert.Equal(t, []string{"Data Analyst at Acme"}, resume.Experience)
	assert.Equal(t, []string{"B.Tech"}, resume.Education)
}

func Test_ResumeParser_Parse_WhenResponseFenced_ShouldStripFences(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("```json\n{\"skills\":[\"Go\"]}\n```", nil)

	resume, err := NewResumeParser(client).Parse(context.Background(), "resume")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, resume.Skills)
}

func Test_ResumeParser_Parse_ShouldSendResumeTextInPrompt(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > len("resume body") && prompt[len(prompt)-len("resume body"):] == "resume body"
	})).Return(`{}`, nil)

	_, err := NewResumeParser(client).Parse(context.Background(), "  resume body  ")

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func Test_ResumeParser_Parse_WhenTextEmpty_ShouldNotCallAi(t *testing.T) {
	client := &mockAiClient{}

	_, err := NewResumeParser(client).Parse(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyResume)
	client.AssertNotCalled(t, "GenerateResponse", mock.Anything, mock.Anything)
}

func Test_ResumeParser_Parse_WhenResponseNotJson_ShouldReturnError(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("I cannot help with that", nil)

	resume, err := NewResumeParser(client).Parse(context.Background(), "resume")

	assert.Error(t, err)
	assert.Nil(t, resume)
}

func Test_ResumeParser_Parse_WhenAiFails_ShouldReturnError(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := NewResumeParser(client).Parse(context.Background(), "resume")

	assert.ErrorContains(t, err, "quota exceeded")
}
