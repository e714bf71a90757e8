// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509bundle splits [PEM] certificate bundles into individual certificate
// blocks and writes filtered bundles back out.
//
// A bundle is read line by line. A line equal to the begin marker opens a block,
// a line equal to the end marker closes it, and anything between blocks (blank
// lines, comments, stray text) is ignored. Blocks are numbered from 1 in file order.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509bundle
