package layout

import (
	"encoding/json"
	"io"
	"os"
)

// debugDump 是调试 JSON 的顶层结构，附带每页文本块数量便于快速核对分页。
type debugDump struct {
	PageCount  int     `json:"pageCount"`
	BoxesPerPg []int   `json:"boxesPerPage"`
	Result     *Result `json:"result"`
}

// EncodeDebug 将分页结果以缩进 JSON 写入 w。
func EncodeDebug(w io.Writer, res *Result) error {
	dump := debugDump{Result: res}
	if res != nil {
		dump.PageCount = len(res.Pages)
		for _, p := range res.Pages {
			dump.BoxesPerPg = append(dump.BoxesPerPg, len(p.Texts))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

// WriteDebugJSON 将分页结果写入 path。
func WriteDebugJSON(res *Result, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodeDebug(f, res)
}
