package jsearch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func fileResponse(t *testing.T, name string) *http.Response {
	file, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}
}

func bodyResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newTestClient(t *testing.T, httpClient HTTPClient) *Client {
	client, err := NewClient(Config{APIKey: "secret"})
	require.NoError(t, err)
	client.SetHTTPClient(httpClient)
	return client
}

func Test_Client_Search_JSearchPayload_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://jsearch.p.rapidapi.com/search?num_pages=1&page=1&query=Python+SQL+in+Pune" &&
			req.Header.Get("X-RapidAPI-Key") == "secret" &&
			req.Header.Get("X-RapidAPI-Host") == "jsearch.p.rapidapi.com"
	})).Return(fileResponse(t, "search_jsearch.json"), nil)

	client := newTestClient(t, mockClient)

	result, err := client.Search(context.Background(), SearchParameters{
		Skills:   []string{"Python", "SQL"},
		Location: "Pune",
		Page:     1,
	})
	require.NoError(t, err)

	assert.Len(result.Results, 2)
	assert.Equal(2, result.Count)
	assert.Equal(DefaultResultsPerPage, result.ResultsPerPage)

	title, _ := result.Results[0].Get("job_title").Text()
	assert.Equal("Python Developer", title)
	assert.Equal(models.KindNull, result.Results[1].Get("job_description").Kind())
	assert.Equal(models.KindAbsent, result.Results[0].Get("job_highlights").Kind())
	mockClient.AssertExpectations(t)
}

func Test_Client_Search_AdzunaPayload_ShouldUseReportedCount(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(fileResponse(t, "search_adzuna.json"), nil)

	client := newTestClient(t, mockClient)

	result, err := client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 2})
	require.NoError(t, err)

	assert.Len(t, result.Results, 1)
	assert.Equal(t, 45, result.Count)
	assert.Equal(t, 20, result.ResultsPerPage)
}

func Test_Client_Search_NonOKStatusCode_ShouldFail(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(bodyResponse(http.StatusTooManyRequests, `{"message":"quota"}`), nil)

	client := newTestClient(t, mockClient)

	_, err := client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func Test_Client_Search_ErrorStatusInPayload_ShouldFail(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(bodyResponse(http.StatusOK, `{"status":"ERROR","data":[]}`), nil)

	client := newTestClient(t, mockClient)

	_, err := client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 1})
	assert.Error(t, err)
}

func Test_Client_Search_PayloadWithoutResults_ShouldFail(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(bodyResponse(http.StatusOK, `{"status":"OK"}`), nil)

	client := newTestClient(t, mockClient)

	_, err := client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 1})
	assert.Error(t, err)
}

func Test_Client_Search_EmptyResultList_ShouldSucceed(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(bodyResponse(http.StatusOK, `{"status":"OK","data":[]}`), nil)

	client := newTestClient(t, mockClient)

	result, err := client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 1})
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Count)
}

func Test_Client_Search_InvalidParameters_ShouldNotSendRequest(t *testing.T) {

	mockClient := &mockHTTPClient{}
	client := newTestClient(t, mockClient)

	_, err := client.Search(context.Background(), SearchParameters{Skills: []string{" "}, Page: 1})
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = client.Search(context.Background(), SearchParameters{Skills: []string{"Go"}, Page: 0})
	assert.Error(t, err)

	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}

func Test_NewClient_WithoutAPIKey_ShouldFail(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func Test_SearchParameters_Query_ShouldLimitSkills(t *testing.T) {
	params := SearchParameters{Skills: []string{"a", "b", "", "c", "d", "e", "f"}, Location: " Delhi "}

	assert.Equal(t, "a b c d e in Delhi", params.Query())
}
