// sniffkit classifies files by their binary content, ignoring names and
// extensions.
//
// Modes:
//
//	sniffkit file.bin other.bin     classify the given paths
//	sniffkit --glob '*.dat' dir     scan a directory
//	sniffkit --watch dir            classify files as they change
//	sniffkit --serve                start the HTTP inspection server
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/gobeaver/sniffkit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("sniffkit", pflag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "emit one JSON object per line")
	hexDump := flags.Bool("hex", false, "also print the first 128 header bytes as hex")
	checksum := flags.String("checksum", "", "also print a checksum (md5|sha1|sha256|sha512|crc32|xxhash)")
	pattern := flags.String("glob", "", "glob pattern filter for directory scans")
	recursive := flags.BoolP("recursive", "r", false, "recurse into subdirectories when scanning")
	watchDir := flags.String("watch", "", "watch a directory and classify files as they change")
	serve := flags.Bool("serve", false, "start the HTTP inspection server")
	addr := flags.String("addr", "", "listen address for --serve (overrides BEAVER_SNIFFKIT_LISTEN_ADDR)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	switch {
	case *serve:
		return runServe(*addr)
	case *watchDir != "":
		return runWatch(*watchDir, *jsonOut)
	default:
		args := flags.Args()
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "usage: sniffkit [flags] <path>...")
			flags.PrintDefaults()
			return fmt.Errorf("no paths given")
		}
		return runDetect(args, *pattern, *recursive, *jsonOut, *hexDump, *checksum)
	}
}

func runDetect(paths []string, pattern string, recursive, jsonOut, hexDump bool, checksum string) error {
	var failed bool
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			results, err := sniffkit.ScanDir(path, pattern, recursive)
			if err != nil {
				return err
			}
			for _, r := range results {
				printResult(r.Path, r.Result, r.Err, jsonOut)
				if r.Err != nil {
					failed = true
				}
			}
			continue
		}

		res, err := sniffkit.Detect(path)
		printResult(path, res, err, jsonOut)
		if err != nil {
			failed = true
			continue
		}
		if checksum != "" {
			sum, err := sniffkit.ChecksumFile(path, sniffkit.ChecksumAlgorithm(checksum))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", checksum, sum)
		}
		if hexDump {
			printHex(path)
		}
	}
	if failed {
		return fmt.Errorf("some files could not be classified")
	}
	return nil
}

func runWatch(dir string, jsonOut bool) error {
	watcher, err := sniffkit.NewWatcher(dir, nil)
	if err != nil {
		return err
	}
	defer watcher.Close()

	log.Printf("watching %s", dir)
	for {
		select {
		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			printResult(ev.Path, ev.Result, nil, jsonOut)
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func runServe(addr string) error {
	cfg, err := sniffkit.GetConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.ListenAddr
	}

	server := sniffkit.NewServer(
		sniffkit.NewInspectorFromConfig(cfg),
		sniffkit.WithMaxUpload(cfg.MaxUploadSize),
	)
	log.Printf("listening on %s", addr)
	return server.ListenAndServe(addr)
}

func printResult(path string, res *sniffkit.Result, err error, jsonOut bool) {
	if jsonOut {
		out := struct {
			Path   string           `json:"path"`
			Result *sniffkit.Result `json:"result,omitempty"`
			Error  string           `json:"error,omitempty"`
		}{Path: path, Result: res}
		if err != nil {
			out.Error = err.Error()
			out.Result = nil
		}
		line, _ := json.Marshal(out)
		fmt.Println(string(line))
		return
	}

	if err != nil {
		fmt.Printf("%s: error: %v\n", path, err)
		return
	}
	fmt.Printf("%s: %s\n", path, res)
}

func printHex(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	buf := make([]byte, sniffkit.HeaderHexBytes)
	n, _ := f.Read(buf)
	if n > 0 {
		fmt.Println(sniffkit.HeaderHex(buf[:n]))
	}
}
