package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want types.SourceFormat
	}{
		{"resume.pdf", types.FormatPDF},
		{"Resume.DOCX", types.FormatDOCX},
		{"resume.txt", types.FormatTXT},
		{"resume.htm", types.FormatHTML},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("resume.odt")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Format)
}

func TestParse_PlainTextUTF8(t *testing.T) {
	doc, err := Parse([]byte("张三\n技能: Python"), types.FormatTXT)

	require.NoError(t, err)
	assert.Equal(t, types.FormatTXT, doc.Format)
	assert.Contains(t, doc.Text, "张三")
}

func TestParse_PlainTextGBKFallback(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("简历：张三"))
	require.NoError(t, err)

	doc, err := Parse(gbk, types.FormatTXT)

	require.NoError(t, err)
	assert.Contains(t, doc.Text, "张三")
}

func TestParse_HTMLStripsMarkupAndScripts(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head><body>
	<h1>张三</h1>
	<script>track()</script>
	<p>邮箱: zhangsan@example.com</p>


	<p>技能</p>
	</body></html>`

	doc, err := Parse([]byte(html), types.FormatHTML)

	require.NoError(t, err)
	assert.Contains(t, doc.Text, "张三")
	assert.Contains(t, doc.Text, "zhangsan@example.com")
	assert.NotContains(t, doc.Text, "track()")
	assert.NotContains(t, doc.Text, "color:red")
	assert.NotContains(t, doc.Text, "\n\n\n")
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("data"), types.SourceFormat("rtf"))

	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestParse_CorruptPDF(t *testing.T) {
	_, err := Parse([]byte("not a pdf"), types.FormatPDF)

	var decode *DecodeError
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, "pdf", decode.Format)
}

func TestParseFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("工作经历\n阿里巴巴 2019-2022"), 0o644))

	doc, err := ParseFile(path)

	require.NoError(t, err)
	assert.Equal(t, types.FormatTXT, doc.Format)
	assert.Contains(t, doc.Text, "阿里巴巴")
}

func TestFlattenDocxXML(t *testing.T) {
	content := `<w:p><w:r><w:t>工作经历</w:t></w:r></w:p><w:p><w:r><w:t>阿里巴巴</w:t></w:r></w:p>`

	assert.Equal(t, "工作经历\n阿里巴巴\n", flattenDocxXML(content))
}
