// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source opens the byte streams records are read from: standard
// input, local files, and objects in gocloud.dev blob buckets.
package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Stdin is the name that refers to standard input.
const Stdin = "-"

// Open opens the named input for reading.
//
// The name is either Stdin, a local file path, or a URL whose last path
// element is the object key within the bucket the rest of the URL names,
// such as file:///var/data/input.txt or s3://bucket/dir/input.txt.
// Bucket schemes other than file and mem need their gocloud.dev driver
// linked into the binary.
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	if !strings.Contains(name, "://") {
		return os.Open(name)
	}
	bucketURL, key, err := splitURL(name)
	if err != nil {
		return nil, err
	}
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("source: opening bucket %v: %w", bucketURL, err)
	}
	rc, err := openObject(ctx, bucket, key)
	if err != nil {
		bucket.Close()
		return nil, err
	}
	return &bucketReader{ReadCloser: rc, bucket: bucket}, nil
}

// openObject opens the object key of an already open bucket. Closing the
// returned reader leaves the bucket open.
func openObject(ctx context.Context, bucket *blob.Bucket, key string) (io.ReadCloser, error) {
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("source: opening object %q: %w", key, err)
	}
	return r, nil
}

// splitURL separates the object key, the last path element, from the
// bucket URL.
func splitURL(name string) (bucketURL, key string, err error) {
	u, err := url.Parse(name)
	if err != nil {
		return "", "", fmt.Errorf("source: invalid input URL %q: %w", name, err)
	}
	dir, key := path.Split(u.Path)
	if key == "" {
		return "", "", fmt.Errorf("source: input URL %q has no object key", name)
	}
	u.Path = strings.TrimSuffix(dir, "/")
	if u.Path == "" && u.Host == "" {
		u.Path = "/"
	}
	return u.String(), key, nil
}

// bucketReader closes the bucket along with the object reader.
type bucketReader struct {
	io.ReadCloser
	bucket *blob.Bucket
}

func (r *bucketReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.bucket.Close(); err == nil {
		err = cerr
	}
	return err
}
