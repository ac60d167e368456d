package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_Email(t *testing.T) {
	info := Contact("联系方式\n邮箱: zhangsan@example.com\n")

	assert.Equal(t, "zhangsan@example.com", info.Email)
}

func TestContact_FirstEmailWins(t *testing.T) {
	info := Contact("primary@example.com\nsecondary@example.org\n")

	assert.Equal(t, "primary@example.com", info.Email)
}

func TestContact_ChineseMobile(t *testing.T) {
	info := Contact("电话: 13800138000\n")

	assert.Equal(t, "13800138000", info.Phone)
}

func TestContact_MobilePatternBeatsGeneric(t *testing.T) {
	// Both the mobile pattern and the generic international pattern match the
	// token; the cascade must stop at the first pattern, not merge results.
	info := Contact("call 13900001111 or +44 20 7946 0958")

	assert.Equal(t, "13900001111", info.Phone)
}

func TestContact_NorthAmericanPhone(t *testing.T) {
	info := Contact("Phone: (415) 555-2671\n")

	assert.Equal(t, "(415) 555-2671", info.Phone)
}

func TestContact_ChineseName(t *testing.T) {
	info := Contact("张三\n软件工程师\nzhangsan@example.com\n")

	assert.Equal(t, "张三", info.Name)
}

func TestContact_LatinName(t *testing.T) {
	info := Contact("Jane Marie Doe\nSoftware Engineer\njane@example.com\n")

	assert.Equal(t, "Jane Marie Doe", info.Name)
}

func TestContact_LooseNameFallback(t *testing.T) {
	// "王小明 简历" fails the bare CJK pattern (contains a space) but passes
	// the loose fallback: short, no @/:/digits, contains CJK.
	info := Contact("王小明 简历\nsome heading\n")

	assert.Equal(t, "王小明 简历", info.Name)
}

func TestContact_NoNameFound(t *testing.T) {
	info := Contact("123 456\n789@x.com: stuff\n")

	assert.Empty(t, info.Name)
}

func TestContact_SocialLinks(t *testing.T) {
	info := Contact("LinkedIn: linkedin.com/in/jane-doe\nGitHub: github.com/janedoe\n")

	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", info.LinkedIn)
	assert.Equal(t, "https://github.com/janedoe", info.GitHub)
}

func TestContact_AllFieldsIndependent(t *testing.T) {
	// A missing phone must not block email extraction and vice versa.
	info := Contact("contact me at someone@example.com please")

	assert.Equal(t, "someone@example.com", info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}
