// Package paragraph 负责把原始文本块切分为段落，并按序号前缀判定标题或正文。
package paragraph

import "strings"

// Delimiter 是段落之间的分隔符（一个空行）。
const Delimiter = "\n\n"

// Kind 表示段落的样式类别。零值为 Body。
type Kind int

const (
	Body Kind = iota
	Heading
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	default:
		return "body"
	}
}

// Unit 是分类后的段落单元。
type Unit struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// headingPrefixes 为中文序号 一、 到 六、，彼此互斥，匹配顺序无关紧要。
var headingPrefixes = [...]string{"一、", "二、", "三、", "四、", "五、", "六、"}

// IsHeading 判断段落是否以标题序号开头（字面前缀匹配）。
func IsHeading(p string) bool {
	for _, prefix := range headingPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Split 按空行切分文本块，保留切分产生的空串。
// strings.Join(Split(block), Delimiter) == block。
func Split(block string) []string {
	return strings.Split(block, Delimiter)
}

// Classify 切分并标注单个文本块，永不失败。
func Classify(block string) []Unit {
	parts := Split(block)
	units := make([]Unit, 0, len(parts))
	for _, p := range parts {
		kind := Body
		if IsHeading(p) {
			kind = Heading
		}
		units = append(units, Unit{Text: p, Kind: kind})
	}
	return units
}

// ClassifyAll 依次处理多个文本块并按原顺序拼接结果。
func ClassifyAll(texts []string) []Unit {
	var units []Unit
	for _, text := range texts {
		units = append(units, Classify(text)...)
	}
	return units
}
