package splice

import (
	"errors"
	"fmt"
)

// 选区偏移为字节偏移，约定 0 <= Start <= End <= len(content)

var (
	ErrOutOfBounds = errors.New("选区超出内容范围")
	ErrUnknownKind = errors.New("未知的 markdown 类型")
)

type Selection struct {
	Start int `json:"selectionStart"`
	End   int `json:"selectionEnd"`
}

// Validate 校验选区相对给定内容是否合法
func (s Selection) Validate(content string) error {
	if s.Start < 0 || s.End < s.Start || s.End > len(content) {
		return fmt.Errorf("%w: [%d, %d) 对于长度 %d", ErrOutOfBounds, s.Start, s.End, len(content))
	}
	return nil
}

// IsEmpty 选区是否为空（未选中任何文本）
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Text 返回选区覆盖的文本
func (s Selection) Text(content string) string {
	return content[s.Start:s.End]
}

// Replace 用 text 替换选区覆盖的子串
func Replace(content string, sel Selection, text string) (string, error) {
	if err := sel.Validate(content); err != nil {
		return "", err
	}
	return content[:sel.Start] + text + content[sel.End:], nil
}

type MarkdownKind string

const (
	KindLink  MarkdownKind = "link"
	KindImage MarkdownKind = "image"
)

const (
	defaultLinkText = "link text"
	defaultAltText  = "alt text"
	linkURLStub     = "url"
	imageURLStub    = "image_url"
)

// InsertMarkdown 在选区处插入链接/图片 markdown，选中文本作为展示文字。
// 返回新内容以及指向 url 占位符末段的新选区，便于调用方直接高亮改写。
func InsertMarkdown(content string, sel Selection, kind MarkdownKind) (string, Selection, error) {
	if err := sel.Validate(content); err != nil {
		return "", Selection{}, err
	}

	selected := sel.Text(content)

	var markdown string
	switch kind {
	case KindLink:
		if selected == "" {
			selected = defaultLinkText
		}
		markdown = fmt.Sprintf("[%s](%s)", selected, linkURLStub)
	case KindImage:
		if selected == "" {
			selected = defaultAltText
		}
		markdown = fmt.Sprintf("![%s](%s)", selected, imageURLStub)
	default:
		return "", Selection{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	next := content[:sel.Start] + markdown + content[sel.End:]

	// 光标落在右括号前的 "url" 三个字符上
	cursor := Selection{
		Start: sel.Start + len(markdown) - 4,
		End:   sel.Start + len(markdown) - 1,
	}
	return next, cursor, nil
}
