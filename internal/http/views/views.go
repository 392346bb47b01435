package views

import (
	"embed"
	"html/template"
	"strings"

	"github.com/tcc-console/internal/constants"
	"github.com/tcc-console/internal/service"
	"github.com/tcc-console/internal/tccapi"
)

//go:embed templates/*.html
var files embed.FS

// Viewer 页面顶部导航使用的当前用户信息
type Viewer struct {
	UserID string
	Role   string
}

// IsManager 是否为经理
func (v *Viewer) IsManager() bool {
	return v != nil && v.Role == constants.RoleManager
}

// Data 模板渲染数据
type Data struct {
	Title       string
	Viewer      *Viewer
	Page        interface{}
	Form        interface{}
	FormError   string
	ID          string
	Query       string
	Branches    []tccapi.Branch
	BranchError string
	Choices     []string
}

// Load 解析内嵌模板
func Load() (*template.Template, error) {
	return template.New("console").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

// Funcs 模板函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		"opt":   optional,
		"money": service.FormatRevenue,
		"label": label,
		"inc":   func(i int) int { return i + 1 },
		"dict":  dict,
	}
}

func optional(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "-"
	}
	return *value
}

// dict 组装子模板参数，键值成对出现
func dict(kv ...interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		out[key] = kv[i+1]
	}
	return out
}

// label 将 IN_TRANSIT 一类的枚举值转为可读文本
func label(value interface{}) string {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case tccapi.TruckStatus:
		raw = string(v)
	case tccapi.ConsignmentStatus:
		raw = string(v)
	case tccapi.Role:
		raw = string(v)
	}
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(raw), "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
