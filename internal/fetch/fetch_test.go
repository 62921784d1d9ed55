package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><title>Job</title><script>track()</script></head>
<body>
  <nav>Home | Jobs</nav>
  <div class="job-description">
    <h1>Machine Learning Engineer</h1>
    <p>Build models with Python and PyTorch.</p>
  </div>
  <footer>Copyright</footer>
</body>
</html>`

func TestURL_FetchesContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Machine Learning Engineer")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURL_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestExtractMainText_UsesContentSelector(t *testing.T) {
	text, err := ExtractMainText(jobPageHTML, JobPostingSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Machine Learning Engineer")
	assert.Contains(t, text, "Build models with Python and PyTorch.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "track()")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)

	assert.Equal(t, "Plain posting text.", text)
}

func TestJobPosting_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Machine Learning Engineer")
}

func TestJobPosting_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL, nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "no readable text")
}
