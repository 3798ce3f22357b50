package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-report/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
    ___ _       _______    ______           __     ____                        __
   /   | |     / / ___/   / ____/___  _____/ /_   / __ \___  ____  ____  _____/ /_
  / /| | | /| / /\__ \   / /   / __ \/ ___/ __/  / /_/ / _ \/ __ \/ __ \/ ___/ __/
 / ___ | |/ |/ /___/ /  / /___/ /_/ (__  ) /_   / _, _/  __/ /_/ / /_/ / /  / /_
/_/  |_|__/|__//____/   \____/\____/____/\__/  /_/ |_|\___/ .___/\____/_/   \__/
                                                         /_/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("AWS Cost Report CLI (v%s)", version.FormatVersion())))
}
