// Package database owns the single pooled Mongo client shared by all request
// handlers, plus the GridFS bucket legacy product images are served from.
package database

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageBucket is the GridFS bucket name the original uploads landed in.
const ImageBucket = "product_images"

type Database struct {
	client *mongo.Client
	db     *mongo.Database
	bucket *gridfs.Bucket
}

// Connect dials Mongo once at process start. The driver pools connections
// internally; handlers share this one client instead of dialing per request.
func Connect(ctx context.Context, uri, dbName string) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(ImageBucket))
	if err != nil {
		return nil, err
	}

	return &Database{client: client, db: db, bucket: bucket}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Users() *mongo.Collection         { return d.db.Collection("users") }
func (d *Database) Products() *mongo.Collection      { return d.db.Collection("products") }
func (d *Database) News() *mongo.Collection          { return d.db.Collection("news") }
func (d *Database) Carts() *mongo.Collection         { return d.db.Collection("carts") }
func (d *Database) Orders() *mongo.Collection        { return d.db.Collection("orders") }
func (d *Database) Favorites() *mongo.Collection     { return d.db.Collection("favorites") }
func (d *Database) Notifications() *mongo.Collection { return d.db.Collection("notifications") }
func (d *Database) AdminLogs() *mongo.Collection     { return d.db.Collection("admin_logs") }

// StreamImage copies the stored file to w without buffering the whole payload.
// The first 512 bytes are sniffed for a content type before streaming the
// rest, since old uploads did not record one.
func (d *Database) StreamImage(id string, w http.ResponseWriter) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid image id: %w", err)
	}

	stream, err := d.bucket.OpenDownloadStream(objID)
	if err != nil {
		return err
	}
	defer stream.Close()

	sniff := make([]byte, 512)
	n, err := io.ReadFull(stream, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	sniff = sniff[:n]

	w.Header().Set("Content-Type", http.DetectContentType(sniff))
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	if _, err := w.Write(sniff); err != nil {
		return err
	}
	_, err = io.Copy(w, stream)
	return err
}

// UploadImage stores raw image bytes in GridFS and returns the new object id.
// Kept for the legacy GridFS path; new uploads go through Cloudinary.
func (d *Database) UploadImage(filename, contentType string, data []byte) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{
		"contentType": contentType,
		"uploadDate":  time.Now(),
	})
	id, err := d.bucket.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// DeleteImage removes a stored file by id.
func (d *Database) DeleteImage(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid image id: %w", err)
	}
	return d.bucket.Delete(objID)
}

// ListImages returns the file documents in the image bucket, newest first.
func (d *Database) ListImages(ctx context.Context, limit int) ([]ImageFile, error) {
	cursor, err := d.bucket.Find(
		bson.M{},
		options.GridFSFind().SetSort(bson.D{{Key: "uploadDate", Value: -1}}).SetLimit(int32(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []ImageFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

type ImageFile struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Filename   string             `bson:"filename" json:"filename"`
	Length     int64              `bson:"length" json:"length"`
	UploadDate time.Time          `bson:"uploadDate" json:"uploadDate"`
}
