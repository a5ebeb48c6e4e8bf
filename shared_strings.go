package xlsx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"unicode/utf8"
)

type sharedStrings []string

func (s sharedStrings) get(idx int) (string, error) {
	if idx < 0 || idx >= len(s) {
		return "", ErrIncorrectSharedString
	}
	return s[idx], nil
}

// phonetic is a reading (rPh) attached to base characters [start, end).
type phonetic struct {
	start, end int
	text       []byte
}

// maxPreallocStrings bounds the capacity taken from the declared count. The
// table still grows past it when the part holds more items.
const maxPreallocStrings = 64 * 1024

// readSharedStrings concatenates all text runs of every <si>. With
// withPhonetics each reading is inserted in parentheses after the characters
// it annotates.
func readSharedStrings(reader io.Reader, withPhonetics bool) (sharedStrings, error) {
	decoder := xml.NewDecoder(reader)
	var (
		result    sharedStrings
		ar        = newArena(0)
		buf       []byte
		phonetics []phonetic
		inText    bool
		inRPh     bool
	)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch token := t.(type) {
		case xml.StartElement:
			switch elementOf(token.Name) {
			case elSst:
				count := 0
				if v, ok := attrs(token.Attr).get("uniqueCount"); ok {
					count, _ = strconv.Atoi(v)
				} else if v, ok := attrs(token.Attr).get("count"); ok {
					count, _ = strconv.Atoi(v)
				}
				count = min(max(count, 0), maxPreallocStrings)
				result = make(sharedStrings, 0, count)
				ar = newArena(count * 16)
			case elSi:
				buf = buf[:0]
				phonetics = phonetics[:0]
			case elT:
				inText = true
			case elR:
			case elRPh:
				if !withPhonetics {
					if err := decoder.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				inRPh = true
				a := attrs(token.Attr)
				start, _ := strconv.Atoi(a.str("sb"))
				end, _ := strconv.Atoi(a.str("eb"))
				phonetics = append(phonetics, phonetic{start: start, end: end})
			default:
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			switch elementOf(token.Name) {
			case elSi:
				if len(phonetics) > 0 {
					result = append(result, ar.toString(insertPhonetics(buf, phonetics)))
				} else {
					result = append(result, ar.toString(buf))
				}
			case elT:
				inText = false
			case elRPh:
				inRPh = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inRPh {
				last := &phonetics[len(phonetics)-1]
				last.text = append(last.text, token...)
			} else {
				buf = append(buf, token...)
			}
		}
	}
	return result, nil
}

func insertPhonetics(base []byte, phonetics []phonetic) []byte {
	runes := bytes.Runes(base)
	out := make([]byte, 0, len(base)*2)
	cur := 0
	for _, p := range phonetics {
		end := min(max(p.end, cur), len(runes))
		for _, r := range runes[cur:end] {
			out = utf8.AppendRune(out, r)
		}
		out = append(out, '(')
		out = append(out, p.text...)
		out = append(out, ')')
		cur = end
	}
	for _, r := range runes[cur:] {
		out = utf8.AppendRune(out, r)
	}
	return out
}
