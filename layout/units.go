package layout

import "strconv"

// 样式以 pt 书写，页面几何与排版以 mm 计算。

// Unit 是长度单位。
type Unit int

const (
	UnitNone Unit = iota
	UnitMM
	UnitIN
	UnitPT
)

// pt 与 mm 的换算系数。
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm

	mmPerInch = 25.4
)

func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	}
	return ""
}

// Length 是带单位的长度。
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func Pt(v float64) Length { return Length{Value: v, Unit: UnitPT} }
func MM(v float64) Length { return Length{Value: v, Unit: UnitMM} }

// ToMM 换算为毫米；无单位数值原样返回。
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitPT:
		return l.Value * PtToMm
	case UnitIN:
		return l.Value * mmPerInch
	}
	return l.Value
}

// ToPT 换算为 pt；无单位数值原样返回。
func (l Length) ToPT() float64 {
	switch l.Unit {
	case UnitPT, UnitNone:
		return l.Value
	}
	return l.ToMM() * MmToPt
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}
