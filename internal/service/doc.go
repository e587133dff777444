// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the credential store: the observable list of
// credentials the UI renders, kept in step with a secure [store.Backend].
//
// Two single-goroutine queues carry all work. The backend queue is the only
// caller of the backend. The publish queue owns the published list and the
// subscriber set. Operations hop publish → backend → publish, so backend
// calls happen in the order the operations were issued and list updates
// are applied in the same order.
package service
