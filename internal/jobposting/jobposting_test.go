package jobposting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html><body>
<h1>后端开发工程师</h1>
<div class="company-name">某科技公司</div>
<div class="job-description">负责推荐系统后端服务，使用Python和Django，部署在Kubernetes上</div>
<div class="job-address">上海</div>
<h3>任职要求</h3>
<ul>
  <li>三年以上Python开发经验</li>
  <li>熟悉Django或Flask框架</li>
  <li>短</li>
</ul>
</body></html>`

func TestFromURL_ExtractsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	job, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, server.URL, job.URL)
	assert.Equal(t, "后端开发工程师", job.Title)
	assert.Equal(t, "某科技公司", job.Company)
	assert.Contains(t, job.Description, "推荐系统")
	assert.Equal(t, "上海", job.Location)

	assert.Contains(t, job.Requirements, "三年以上Python开发经验")
	assert.Contains(t, job.Requirements, "熟悉Django或Flask框架")
	assert.NotContains(t, job.Requirements, "短")

	assert.Contains(t, job.KeySkills, "Python")
	assert.Contains(t, job.KeySkills, "Django")
	assert.Contains(t, job.KeySkills, "Kubernetes")
}

func TestFromURL_NoRequirementsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>岗位</h1><p>简单介绍</p></body></html>`))
	}))
	defer server.Close()

	job, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{noRequirementsListed}, job.Requirements)
}

func TestFromURL_RequirementCap(t *testing.T) {
	html := `<html><body><h2>任职要求</h2><ul>`
	for i := 0; i < 20; i++ {
		html += `<li>具备多年的大型分布式系统开发经验</li><li>熟悉高并发场景下的性能调优方法</li>`
	}
	html += `</ul></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	job, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(job.Requirements), maxRequirements)
}

func TestFromURL_FetchFailure(t *testing.T) {
	_, err := FromURL(context.Background(), "not a url", nil)
	assert.Error(t, err)
}

func TestFromDescription(t *testing.T) {
	description := "负责后端平台建设。要求三年以上Python经验。熟悉Docker技能者优先。本科学历。薪资面议。"

	job := FromDescription(description)

	assert.Equal(t, customTitle, job.Title)
	assert.Equal(t, customCompany, job.Company)
	assert.Equal(t, description, job.Description)

	assert.Equal(t, []string{
		"要求三年以上Python经验",
		"熟悉Docker技能者优先",
		"本科学历",
	}, job.Requirements)

	assert.Contains(t, job.KeySkills, "Python")
	assert.Contains(t, job.KeySkills, "Docker")
}

func TestFromDescription_NoKeywordSentences(t *testing.T) {
	job := FromDescription("一段与要求无关的介绍文字")

	assert.Equal(t, []string{noRequirementsListed}, job.Requirements)
}

func TestScanSkills_WordBoundariesForLatin(t *testing.T) {
	skills := ScanSkills("We use Python and JavaScript, plus 数据分析 pipelines")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "数据分析")
	// "Java" must not fire inside "JavaScript".
	assert.NotContains(t, skills, "Java")
}

func TestScanSkills_VocabularyOrderStable(t *testing.T) {
	skills := ScanSkills("Kubernetes before Python in text, vocabulary order wins")

	require.Len(t, skills, 2)
	assert.Equal(t, []string{"Python", "Kubernetes"}, skills)
}
