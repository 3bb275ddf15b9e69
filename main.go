package main

import (
	"log"

	tendermint "github.com/hyperledger-labs/yui-path-relayer/chains/tendermint/module"
	"github.com/hyperledger-labs/yui-path-relayer/cmd"
)

func main() {
	if err := cmd.Execute(
		tendermint.Module{},
	); err != nil {
		log.Fatal(err)
	}
}
