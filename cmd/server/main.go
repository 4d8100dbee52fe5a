package main

import "github.com/nguyentranbao-ct/ott-backoffice/cmd"

func main() {
	cmd.Execute()
}
