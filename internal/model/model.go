// Package model defines the blog entities (User, Post, Comment, Like),
// the payloads accepted by write operations, and the relation filter
// used by list operations.
//
// Entities reference each other by id only. A Post knows its owner's id,
// a Comment and a Like know the ids of their post and user. Resolving an
// id into the referenced entity is the service layer's job.
package model
