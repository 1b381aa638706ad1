package portal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/notify"
	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/share"
)

const copiedFor = 2 * time.Second

var uploadFormats = []string{".pdf", ".doc", ".docx", ".txt", ".md"}

type copiedExpiredMsg struct {
	seq int
}

type dialogModel struct {
	upload     textinput.Model
	uploadErr  string
	permission share.Permission
	copied     bool
	copiedSeq  int
}

func newDialogModel() dialogModel {
	upload := textinput.New()
	upload.Placeholder = "path/to/file.pdf"
	upload.Prompt = "File: "
	upload.Width = 40
	return dialogModel{upload: upload, permission: share.CanView}
}

func (m *Model) openUpload() tea.Cmd {
	m.dialog.upload.SetValue("")
	m.dialog.uploadErr = ""
	m.coord.OpenUpload()
	return m.dialog.upload.Focus()
}

func (m *Model) openShare(id core.DocumentID) {
	m.dialog.permission = share.CanView
	m.dialog.copied = false
	m.coord.RequestShare(id)
}

func (m *Model) updateDialog(modal core.Modal, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.back) {
		if modal == core.ModalUpload {
			m.dialog.upload.Blur()
		}
		m.coord.CloseModal(modal)
		return nil
	}

	switch modal {
	case core.ModalDelete:
		switch {
		case key.Matches(msg, m.keys.confirm):
			if err := m.coord.ConfirmDelete(); err != nil {
				m.toasts.Notify(err.Error(), notify.Error)
			}
		case msg.String() == "n":
			m.coord.CloseModal(core.ModalDelete)
		}
		return nil
	case core.ModalShare:
		return m.updateShareDialog(msg)
	case core.ModalUpload:
		return m.updateUploadDialog(msg)
	}
	return nil
}

func (m *Model) updateUploadDialog(msg tea.KeyMsg) tea.Cmd {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.dialog.upload, cmd = m.dialog.upload.Update(msg)
		m.dialog.uploadErr = ""
		return cmd
	}

	if err := checkUpload(m.dialog.upload.Value()); err != nil {
		m.dialog.uploadErr = err.Error()
		return nil
	}

	m.logger.Info("upload accepted", zap.String("file", m.dialog.upload.Value()))
	m.dialog.upload.Blur()
	m.coord.ConfirmUpload()
	return nil
}

// checkUpload validates the chosen file locally. Sending it anywhere is the
// document service's job.
func checkUpload(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("choose a file to upload")
	}

	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, f := range uploadFormats {
		if ext == f {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported format %q: use %s", ext, strings.Join(uploadFormats, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func (m *Model) updateShareDialog(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.permission):
		m.dialog.permission = m.dialog.permission.Next()
	case key.Matches(msg, m.keys.copyLink):
		link, err := m.shareLink()
		if err != nil {
			m.toasts.Notify(err.Error(), notify.Error)
			return nil
		}
		if err := m.copier.Copy(link); err != nil {
			m.logger.Warn("copy share link", zap.Error(err))
			m.toasts.Notify("Could not copy link: "+err.Error(), notify.Error)
			return nil
		}
		m.dialog.copied = true
		m.dialog.copiedSeq++
		seq := m.dialog.copiedSeq
		return tea.Tick(copiedFor, func(time.Time) tea.Msg {
			return copiedExpiredMsg{seq: seq}
		})
	}
	return nil
}

func (m *Model) dialogTarget(d core.Dialog) (catalog.Document, error) {
	id, ok := d.Target.Get()
	if !ok {
		return catalog.Document{}, core.ErrMissingSelection
	}
	return m.docs.Get(id)
}

func (m *Model) shareLink() (string, error) {
	doc, err := m.dialogTarget(m.coord.State().Modals.Share)
	if err != nil {
		return "", err
	}
	return share.Link(m.cfg.ShareBaseURL, doc.Title)
}

func (m *Model) renderDialog(modal core.Modal) string {
	switch modal {
	case core.ModalDelete:
		return m.renderDeleteDialog()
	case core.ModalShare:
		return m.renderShareDialog()
	case core.ModalUpload:
		return m.renderUploadDialog()
	}
	return ""
}

func (m *Model) renderDeleteDialog() string {
	doc, err := m.dialogTarget(m.coord.State().Modals.Delete)
	name := "this document"
	if err == nil {
		name = fmt.Sprintf("%q", doc.Title)
	}
	return dialogStyle.Render(strings.Join([]string{
		dangerStyle.Render("Delete Document"),
		"",
		textStyle.Render("Are you sure you want to delete " + name + "?"),
		subtleStyle.Render("This action cannot be undone."),
		"",
		subtleStyle.Render("↵/y delete · n/esc cancel"),
	}, "\n"))
}

func (m *Model) renderShareDialog() string {
	doc, err := m.dialogTarget(m.coord.State().Modals.Share)
	if err != nil {
		return dialogStyle.Render(dangerStyle.Render("Share Document") + "\n\n" + subtleStyle.Render(err.Error()))
	}

	link, err := share.Link(m.cfg.ShareBaseURL, doc.Title)
	if err != nil {
		link = err.Error()
	}
	copied := subtleStyle.Render("c copy")
	if m.dialog.copied {
		copied = publishedStyle.Render("✓ Copied")
	}

	lines := []string{
		titleStyle.Render("Share \"" + doc.Title + "\""),
		"",
		textStyle.Render("Share Link"),
		lipgloss.JoinHorizontal(lipgloss.Center, searchStyle.Render(link), " ", copied),
		"",
		textStyle.Render("Invite permission: ") + tagStyle.Render(m.dialog.permission.Label()),
		"",
		textStyle.Render("People with Access"),
	}
	for _, a := range doc.Access {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			avatarStyle.Render(a.Initials()),
			textStyle.Render(a.Name+" <"+a.Email+">"),
			subtleStyle.Render(a.Role.Label()),
		))
	}
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderUploadDialog() string {
	lines := []string{
		titleStyle.Render("Upload Document"),
		"",
		textStyle.Render("Supported formats: " + strings.Join(uploadFormats, ", ")),
		"",
		m.dialog.upload.View(),
	}
	if m.dialog.uploadErr != "" {
		lines = append(lines, dangerStyle.Render(m.dialog.uploadErr))
	}
	lines = append(lines, "", subtleStyle.Render("↵ upload · esc cancel"))
	return dialogStyle.Render(strings.Join(lines, "\n"))
}
