package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-shiori/logpuzzle"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes the command with args and returns the process exit status.
// A nil transport makes the downloader build its own.
func run(args []string, stdout, stderr io.Writer, transport http.RoundTripper) int {
	cmd := newRootCmd(transport)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// No arguments at all means the user needs to see how to call us
	if len(args) == 0 {
		cmd.SetOut(stderr)
		if err := cmd.Usage(); err != nil {
			logrus.Errorln(err)
		}
		return exitUsage
	}

	if err := cmd.Execute(); err != nil {
		logrus.Errorln(err)
		return exitCode(err)
	}

	return exitOK
}

func newRootCmd(transport http.RoundTripper) *cobra.Command {
	// Prepare cmd
	cmd := &cobra.Command{
		Use:   "logpuzzle [-d|--todir DIR] LOGFILE",
		Short: "Find the puzzle URLs in an Apache logfile and download the images",
		Args:  exactlyOneLogFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdHandler(cmd, args, transport)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("todir", "d", "", "destination directory for downloaded images")
	cmd.Flags().StringP("user-agent", "u", "", "set custom user agent")
	cmd.Flags().IntP("timeout", "t", 60, "maximum time (in second) before request timeout")
	cmd.Flags().Bool("insecure", false, "skip X.509 (TLS) certificate verification")
	cmd.Flags().BoolP("keep-going", "k", false, "keep downloading when an image fails")
	cmd.Flags().BoolP("quiet", "q", false, "disable logging")

	return cmd
}

func cmdHandler(cmd *cobra.Command, args []string, transport http.RoundTripper) error {
	// Parse flags
	destDir, _ := cmd.Flags().GetString("todir")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	timeout, _ := cmd.Flags().GetInt("timeout")
	skipTLSVerification, _ := cmd.Flags().GetBool("insecure")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	disableLog, _ := cmd.Flags().GetBool("quiet")

	urls, err := logpuzzle.ReadURLs(args[0])
	if err != nil {
		return err
	}

	// Without destination, just print the URLs
	if destDir == "" {
		return printURLs(cmd.OutOrStdout(), urls)
	}

	d := logpuzzle.Downloader{
		UserAgent:           userAgent,
		EnableLog:           !disableLog,
		Transport:           transport,
		RequestTimeout:      time.Duration(timeout) * time.Second,
		SkipTLSVerification: skipTLSVerification,
		ContinueOnError:     keepGoing,
	}
	d.Validate()

	results, err := d.DownloadImages(context.Background(), urls, destDir)
	if !disableLog {
		saved := 0
		for _, result := range results {
			if result.Err == nil {
				saved++
			}
		}
		logrus.Printf("saved %d of %d images into %s\n", saved, len(urls), destDir)
	}

	return err
}

func printURLs(w io.Writer, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(w, strings.Join(urls, "\n"))
	return err
}
