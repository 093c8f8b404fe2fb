// Package open hands URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/cinebox-cli/cinebox/constant"
)

// Start launches the handler for input without waiting for it.
func Start(input string) error {
	cmd, err := command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run launches the handler for input and waits for it to exit.
func Run(input string) error {
	cmd, err := command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open-url", input), nil
	default:
		return nil, fmt.Errorf("opening links is not supported on %s", goos)
	}
}
