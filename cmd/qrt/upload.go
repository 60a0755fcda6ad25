package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfrie/qrt/internal/uploadstore"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Copy a file into the upload store and print its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Put(args[0])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var serveUploadCmd = &cobra.Command{
	Use:   "serve-upload <id>",
	Short: "Resolve a previously uploaded id back to its file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		path, err := store.Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func openStore() (*uploadstore.Store, error) {
	root := viper.GetString("tempdir_root")
	return uploadstore.Open(filepath.Join(root, "qrt-uploads.db"), filepath.Join(root, "qrt-uploads"))
}
