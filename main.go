package main

import "github.com/thirdweb-dev/safecosts/cmd"

func main() {
	cmd.Execute()
}
