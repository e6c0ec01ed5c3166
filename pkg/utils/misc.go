package utils

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// Unsafe conversion. Mainly used for mapping chat ids back and forth
// as discord and telebot are using strings and integers respectively.
func S2I(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func EnsureTmpDirExists(tmpDir string) {
	err := os.MkdirAll(tmpDir, 0755)
	if err != nil {
		panic(fmt.Sprintf("Couldn't create tmp dir for yt-dlp, %s", err))
	}
}

// CleanupTmpDir sweeps stale download artifacts. Scratch directories are
// removed by the chain itself, this catches anything a crashed run left behind.
func CleanupTmpDir(tmpDir string) {
	cmd := exec.Command("find", tmpDir, "-mindepth", "1", "-mtime", "+2", "-delete")
	err := cmd.Run()
	if err != nil {
		slog.Error(fmt.Sprintf("Error cleaning up tmp dir %s: %v", tmpDir, err))
	}
}
