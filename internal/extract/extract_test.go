package extract

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `张三
邮箱: zhangsan@example.com
电话: 13800138000
github.com/zhangsan

工作经历
阿里巴巴集团 2019-2022 使用Python开发推荐系统
字节跳动 2022 - 至今 负责Go微服务平台

教育背景
清华大学 计算机科学 学士

技能
Python, Go, Docker; Kubernetes

项目经验
项目：实时数据管道：
基于Kafka构建的低延迟事件处理系统

证书
AWS Certified Developer Associate
`

func TestCandidate_FullDocument(t *testing.T) {
	record := Candidate(types.RawDocument{Text: sampleResume, Format: types.FormatTXT})

	assert.Equal(t, "张三", record.Contact.Name)
	assert.Equal(t, "zhangsan@example.com", record.Contact.Email)
	assert.Equal(t, "13800138000", record.Contact.Phone)
	assert.Equal(t, "https://github.com/zhangsan", record.Contact.GitHub)

	require.NotEmpty(t, record.WorkExperience)
	assert.Equal(t, "阿里巴巴集团", record.WorkExperience[0].Company)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "学士", record.Education[0].Degree)

	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "Kubernetes")

	require.NotEmpty(t, record.Projects)
	assert.Equal(t, "项目：实时数据管道：", record.Projects[0].Name)

	require.Len(t, record.Certifications, 1)
	assert.Equal(t, sampleResume, record.Text)
}

func TestCandidate_Idempotent(t *testing.T) {
	doc := types.RawDocument{Text: sampleResume, Format: types.FormatTXT}

	first, err := json.Marshal(Candidate(doc))
	require.NoError(t, err)
	second, err := json.Marshal(Candidate(doc))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCandidate_EmptyDocumentFailsSoft(t *testing.T) {
	record := Candidate(types.RawDocument{Text: "", Format: types.FormatTXT})

	assert.Empty(t, record.Contact.Email)
	assert.Empty(t, record.WorkExperience)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Projects)
	assert.Empty(t, record.Certifications)
}
