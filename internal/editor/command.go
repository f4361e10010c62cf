package editor

import "strings"

// executeCommand runs a command typed after ':'.
func (a *App) executeCommand(cmd string) {
	cmd = strings.TrimSpace(cmd)
	a.log.Debug("command", "cmd", cmd)

	switch {
	case cmd == "":

	case cmd == "q":
		a.requestQuit()

	case cmd == "q!":
		a.quit = true

	case cmd == "w":
		a.save()

	case strings.HasPrefix(cmd, "w "):
		filename := strings.TrimSpace(cmd[2:])
		if filename != "" {
			a.doc.SetFilename(filename)
			a.writeDocument()
		}

	case cmd == "wq":
		if a.doc.Filename() == "" {
			a.quitAfterSave = true
			a.startPrompt(PromptSaveAs)
		} else if a.writeDocument() {
			a.quit = true
		}

	default:
		a.log.Info("unknown command", "cmd", cmd)
		if s := a.commands.Suggest(cmd); s != "" {
			a.statusBar.SetMessage("Unknown command: %s (did you mean :%s?)", cmd, s)
			return
		}
		a.statusBar.SetMessage("Unknown command: %s", cmd)
	}
}
