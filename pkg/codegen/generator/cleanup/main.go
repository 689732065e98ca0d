package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rancher/idp-client/pkg/codegen/generator"
)

func main() {
	if err := run("./pkg/client/generated"); err != nil {
		panic(err)
	}
}

func run(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			if strings.Contains(path, "vendor") {
				return filepath.SkipDir
			}
			return nil
		}

		if generator.IsGenerated(path) {
			fmt.Println("Removing", path)
			if err := os.Remove(path); err != nil {
				return err
			}
		}

		return nil
	})
}
