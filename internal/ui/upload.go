package ui

import (
	"strings"

	"github.com/auroraair/formkit/pkg/dom"
)

const (
	// UploadZoneID is the id of the drop target.
	UploadZoneID = "uploadZone"
	// FileInputID is the id of the hidden file input behind the zone.
	FileInputID = "csvFile"
	// UploadTextClass marks the label showing the selected file.
	UploadTextClass = "upload-text"
	// DragOverClass highlights the zone while a file hovers over it.
	DragOverClass = "dragover"
	// CSVSuffix is the only accepted file name suffix. The match is case-sensitive.
	CSVSuffix = ".csv"
)

// IsCSV reports whether name is accepted by the upload zone.
func IsCSV(name string) bool {
	return strings.HasSuffix(name, CSVSuffix)
}

// SelectedText is the label text for a chosen file.
func SelectedText(name string) string {
	return "Selected: " + name
}

// UploadZone wires #uploadZone and #csvFile. It reports false, binding
// nothing, when either element is missing.
func UploadZone(doc *dom.Document) bool {
	zone, input := doc.ByID(UploadZoneID), doc.ByID(FileInputID)
	if zone == nil || input == nil {
		return false
	}

	doc.AddEventListener(zone, dom.Click, func(*dom.Event) {
		input.Click()
	})
	doc.AddEventListener(zone, dom.DragOver, func(ev *dom.Event) {
		ev.PreventDefault()
		zone.AddClass(DragOverClass)
	})
	doc.AddEventListener(zone, dom.DragLeave, func(*dom.Event) {
		zone.RemoveClass(DragOverClass)
	})
	doc.AddEventListener(zone, dom.Drop, func(ev *dom.Event) {
		ev.PreventDefault()
		zone.RemoveClass(DragOverClass)
		if len(ev.Files) > 0 && IsCSV(ev.Files[0].Name) {
			input.SetFiles(ev.Files)
			setUploadText(doc, ev.Files[0].Name)
		}
	})
	doc.AddEventListener(input, dom.Change, func(*dom.Event) {
		if files := input.Files(); len(files) > 0 {
			setUploadText(doc, files[0].Name)
		}
	})
	return true
}

func setUploadText(doc *dom.Document, name string) {
	if label := doc.Query(dom.ByClass(UploadTextClass)); label != nil {
		label.SetText(SelectedText(name))
	}
}
