package xlsx

import (
	"encoding/xml"
	"io"
	"time"
)

func readWorkbook(rd io.Reader) (*xlsxWorkbook, error) {
	decoder := xml.NewDecoder(rd)
	data := &xlsxWorkbook{}
	err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

type xlsxWorkbook struct {
	XMLName    xml.Name `xml:"workbook"`
	WorkbookPr struct {
		Date1904 string `xml:"date1904,attr"`
	} `xml:"workbookPr"`
	Protection *struct {
		LockStructure    string `xml:"lockStructure,attr"`
		LockWindows      string `xml:"lockWindows,attr"`
		WorkbookPassword string `xml:"workbookPassword,attr"`
	} `xml:"workbookProtection"`
	BookViews []struct {
		ActiveTab int `xml:"activeTab,attr"`
	} `xml:"bookViews>workbookView"`
	Sheets []xlsxSheet `xml:"sheets>sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	ID      string `xml:"id,attr"`
	State   string `xml:"state,attr"`
}

func (s xlsxSheet) hidden() bool {
	return s.State == "hidden" || s.State == "veryHidden"
}

func (wb *xlsxWorkbook) date1904() bool {
	return xmlBool(wb.WorkbookPr.Date1904)
}

func (wb *xlsxWorkbook) protection() WorkbookProtection {
	if wb.Protection == nil {
		return WorkbookProtection{}
	}
	return WorkbookProtection{
		LockStructure: xmlBool(wb.Protection.LockStructure),
		LockWindows:   xmlBool(wb.Protection.LockWindows),
		PasswordHash:  wb.Protection.WorkbookPassword,
	}
}

func (wb *xlsxWorkbook) activeTab() int {
	if len(wb.BookViews) == 0 {
		return 0
	}
	return wb.BookViews[0].ActiveTab
}

func xmlBool(s string) bool {
	return s == "1" || s == "true"
}

type xlsxCoreProperties struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Category       string   `xml:"category"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

func readCoreProperties(rd io.Reader) (Metadata, error) {
	var props xlsxCoreProperties
	if err := xml.NewDecoder(rd).Decode(&props); err != nil {
		return Metadata{}, err
	}
	md := Metadata{
		Title:          props.Title,
		Subject:        props.Subject,
		Creator:        props.Creator,
		Keywords:       props.Keywords,
		Description:    props.Description,
		LastModifiedBy: props.LastModifiedBy,
		Category:       props.Category,
	}
	md.Created, _ = time.Parse(time.RFC3339, props.Created)
	md.Modified, _ = time.Parse(time.RFC3339, props.Modified)
	return md, nil
}
