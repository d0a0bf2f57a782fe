package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	type TC struct {
		Args   []string
		Code   int
		Stdout string
		Stderr []string
	}

	tcs := []TC{
		{
			Args:   []string{"0"},
			Code:   exitOK,
			Stdout: "0=00000000\n",
		},
		{
			Args:   []string{"1"},
			Code:   exitOK,
			Stdout: "1=00000001\n",
		},
		{
			Args:   []string{"-1"},
			Code:   exitOK,
			Stdout: "-1=11111111\n",
		},
		{
			Args:   []string{"128"},
			Code:   exitOK,
			Stdout: "128=0000000010000000\n",
		},
		{
			Args:   []string{"--", "-128"},
			Code:   exitOK,
			Stdout: "-128=10000000\n",
		},
		{
			Args:   []string{"+300"},
			Code:   exitOK,
			Stdout: "300=0000000100101100\n",
		},
		{
			Args:   []string{"-0001000"},
			Code:   exitOK,
			Stdout: "-1000=1111110000011000\n",
		},
		{
			Args:   []string{"--dump", "5"},
			Code:   exitOK,
			Stdout: "5=00000101\n",
			Stderr: []string{"([]uint8)", "00000000  05"},
		},
		{
			Args:   []string{"-d", "debug", "7"},
			Code:   exitOK,
			Stdout: "7=00000111\n",
			Stderr: []string{"[DBG] BINT: parsing \"7\""},
		},
		{
			Args:   []string{"12x"},
			Code:   exitFail,
			Stderr: []string{"[ERR] BINT:", "invalid string literal"},
		},
		{
			Args:   []string{"-"},
			Code:   exitFail,
			Stderr: []string{"invalid string literal"},
		},
		{
			Args:   []string{},
			Code:   exitUsage,
			Stderr: []string{"Usage:", "bigint [OPTIONS] <integer>"},
		},
		{
			Args:   []string{"1", "2"},
			Code:   exitUsage,
			Stderr: []string{"Usage:"},
		},
		{
			Args:   []string{"--bogus", "1"},
			Code:   exitUsage,
			Stderr: []string{"unknown flag", "Usage:"},
		},
		{
			Args:   []string{"-d", "loud", "1"},
			Code:   exitUsage,
			Stderr: []string{"unknown debug level \"loud\"", "Usage:"},
		},
		{
			Args:   []string{"--help"},
			Code:   exitOK,
			Stdout: "Usage:",
		},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("[%d]%v", i, tc.Args), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tc.Args, &stdout, &stderr)
			require.Equal(t, tc.Code, code, stderr.String())

			if tc.Code == exitOK && tc.Args[0] != "--help" {
				require.Equal(t, tc.Stdout, stdout.String())
			} else {
				require.Contains(t, stdout.String(), tc.Stdout)
			}
			for _, s := range tc.Stderr {
				require.Contains(t, stderr.String(), s)
			}
		})
	}
}

func TestSplitNegatives(t *testing.T) {
	type TC struct {
		Input []string
		Opts  []string
		Nums  []string
	}

	tcs := []TC{
		{
			Input: []string{"-5"},
			Nums:  []string{"-5"},
		},
		{
			Input: []string{"--dump", "-5"},
			Opts:  []string{"--dump"},
			Nums:  []string{"-5"},
		},
		{
			Input: []string{"-d", "info", "5"},
			Opts:  []string{"-d", "info", "5"},
		},
		{
			Input: []string{"--", "-5", "-6"},
			Opts:  []string{"--", "-5", "-6"},
		},
		{
			Input: []string{"-"},
			Opts:  []string{"-"},
		},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("[%d]%v", i, tc.Input), func(t *testing.T) {
			opts, nums := splitNegatives(tc.Input)
			require.Equal(t, tc.Opts, opts)
			require.Equal(t, tc.Nums, nums)
		})
	}
}
